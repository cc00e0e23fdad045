package handlers

import (
	"errors"
	"log"

	"github.com/imshubham07/Brainly/internal/apperrors"
	"github.com/imshubham07/Brainly/internal/models"
	"github.com/imshubham07/Brainly/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ContentHandler handles HTTP requests for saved content.
type ContentHandler struct {
	service *services.ContentService
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(service *services.ContentService) *ContentHandler {
	return &ContentHandler{
		service: service,
	}
}

// RegisterRoutes registers the content routes with the Fiber app. All of
// them sit behind the auth gate.
func (h *ContentHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/content", h.HandleAddContent)
	router.Get("/content", h.HandleListContent)
	router.Delete("/content/:id", h.HandleDeleteContent)
}

// AddContentRequest represents the request body for adding content. Link
// and type are stored as supplied; there is no format or enum validation at
// this boundary.
type AddContentRequest struct {
	Link string `json:"link"`
	Type string `json:"type"`
}

// contentOwner is the resolved owner reference embedded in content listings.
type contentOwner struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

// contentItem is a content record with its owner resolved to a display name.
type contentItem struct {
	ID     string       `json:"id"`
	Link   string       `json:"link"`
	Type   string       `json:"type"`
	Title  string       `json:"title,omitempty"`
	Notes  string       `json:"notes,omitempty"`
	Tags   []string     `json:"tags"`
	UserID contentOwner `json:"userId"`
}

func newContentItems(contents []models.Content, owner *models.User) []contentItem {
	items := make([]contentItem, 0, len(contents))
	for _, content := range contents {
		items = append(items, contentItem{
			ID:    content.ID,
			Link:  content.Link,
			Type:  content.Type,
			Title: content.Title,
			Notes: content.Notes,
			Tags:  content.Tags,
			UserID: contentOwner{
				ID:       owner.ID,
				Username: owner.Username,
			},
		})
	}
	return items
}

// HandleAddContent saves a new link for the authenticated user. The write
// is acknowledged by the store before the success response goes out.
func (h *ContentHandler) HandleAddContent(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var req AddContentRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add content request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid request body",
		})
	}

	if _, err := h.service.AddContent(userID, req.Link, req.Type); err != nil {
		log.Printf("Error adding content for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "could not add content",
		})
	}

	return c.JSON(fiber.Map{
		"message": "content added",
	})
}

// HandleListContent returns all content owned by the authenticated user,
// with the owner reference resolved to a display name.
func (h *ContentHandler) HandleListContent(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	contents, owner, err := h.service.ListContent(userID)
	if err != nil {
		log.Printf("Error listing content for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "could not retrieve content",
		})
	}

	return c.JSON(fiber.Map{
		"content": newContentItems(contents, owner),
	})
}

// HandleDeleteContent deletes one content record by id, scoped to the
// authenticated owner. A miss (absent or foreign record) answers 404.
func (h *ContentHandler) HandleDeleteContent(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	contentID := c.Params("id")

	if err := h.service.DeleteContent(userID, contentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "content not found",
			})
		}
		log.Printf("Error deleting content %s for user %s: %v", contentID, userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "could not delete content",
		})
	}

	return c.JSON(fiber.Map{
		"message": "content deleted",
	})
}
