package handlers

import (
	"errors"
	"log"

	"github.com/imshubham07/Brainly/internal/apperrors"
	"github.com/imshubham07/Brainly/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ShareHandler handles HTTP requests for the public share link.
type ShareHandler struct {
	service *services.ShareService
}

// NewShareHandler creates a new ShareHandler.
func NewShareHandler(service *services.ShareService) *ShareHandler {
	return &ShareHandler{
		service: service,
	}
}

// RegisterRoutes registers the share routes. The toggle and status routes
// carry the auth gate per route because the :hash resolution below them is
// public; a group-level gate on the shared prefix would block it. The static
// status route is registered before the :hash wildcard so the wildcard
// cannot shadow it.
func (h *ShareHandler) RegisterRoutes(router fiber.Router, authGate fiber.Handler) {
	router.Post("/brain/share", authGate, h.HandleShareToggle)
	router.Get("/brain/share/status", authGate, h.HandleShareStatus)
	router.Get("/brain/share/:hash", h.HandleResolveShare)
}

// ShareRequest represents the request body toggling sharing on or off.
type ShareRequest struct {
	Share bool `json:"share"`
}

// HandleShareToggle enables or disables sharing for the authenticated user.
// Enabling is idempotent: an existing hash is returned unchanged. Disabling
// an absent link is a no-op.
func (h *ShareHandler) HandleShareToggle(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var req ShareRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing share request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid request body",
		})
	}

	if req.Share {
		hash, err := h.service.EnableShare(userID)
		if err != nil {
			log.Printf("Error enabling share for user %s: %v", userID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "could not enable sharing",
			})
		}
		return c.JSON(fiber.Map{
			"hash": hash,
		})
	}

	if err := h.service.DisableShare(userID); err != nil {
		log.Printf("Error disabling share for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "could not disable sharing",
		})
	}
	return c.JSON(fiber.Map{
		"message": "share link removed",
	})
}

// HandleShareStatus reports whether the authenticated user currently shares
// their collection, without side effects.
func (h *ShareHandler) HandleShareStatus(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	isShared, hash, err := h.service.ShareStatus(userID)
	if err != nil {
		log.Printf("Error getting share status for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "could not get share status",
		})
	}

	resp := fiber.Map{"isShared": isShared}
	if isShared {
		resp["hash"] = hash
	}
	return c.JSON(resp)
}

// HandleResolveShare serves the public read-only view of a shared
// collection. The whole collection is exposed as it exists right now.
func (h *ShareHandler) HandleResolveShare(c *fiber.Ctx) error {
	hash := c.Params("hash")

	username, contents, err := h.service.ResolveShare(hash)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "share link not found",
			})
		}
		log.Printf("Error resolving share %s: %v", hash, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "could not resolve share link",
		})
	}

	return c.JSON(fiber.Map{
		"username": username,
		"content":  contents,
	})
}
