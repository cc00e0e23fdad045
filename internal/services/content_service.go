package services

import (
	"fmt"
	"log"

	"github.com/imshubham07/Brainly/internal/models"
	"github.com/imshubham07/Brainly/internal/repositories"
	"github.com/imshubham07/Brainly/pkg/rabbitmq"
)

// ContentService handles business logic for a user's saved content.
type ContentService struct {
	contentRepo repositories.ContentRepository
	userRepo    repositories.UserRepository
	mqClient    *rabbitmq.Client // optional, nil disables event publishing
}

// NewContentService creates a new ContentService. mqClient may be nil when
// no broker is configured.
func NewContentService(contentRepo repositories.ContentRepository, userRepo repositories.UserRepository, mqClient *rabbitmq.Client) *ContentService {
	return &ContentService{
		contentRepo: contentRepo,
		userRepo:    userRepo,
		mqClient:    mqClient,
	}
}

// AddContent persists a new content record for the user with an empty tag
// set. Link and type are stored as supplied; this layer does not validate
// URL format or the platform enumeration. The insert is acknowledged before
// this returns.
func (s *ContentService) AddContent(userID, link, contentType string) (*models.Content, error) {
	content := &models.Content{
		UserID: userID,
		Link:   link,
		Type:   contentType,
		Tags:   []string{},
	}
	if err := s.contentRepo.Create(content); err != nil {
		return nil, fmt.Errorf("failed to add content: %w", err)
	}

	s.publishEvent("content.created", content)
	return content, nil
}

// ListContent returns all content owned by the user along with the owner
// record, so callers can render the display name next to each item.
func (s *ContentService) ListContent(userID string) ([]models.Content, *models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, nil, err
	}
	contents, err := s.contentRepo.GetAllByUser(userID)
	if err != nil {
		return nil, nil, err
	}
	return contents, user, nil
}

// DeleteContent removes a single content record, but only when it is owned
// by the requesting user. The ownership check and the delete are one store
// operation.
func (s *ContentService) DeleteContent(userID, contentID string) error {
	if err := s.contentRepo.DeleteOwned(contentID, userID); err != nil {
		return err
	}

	s.publishEvent("content.deleted", &models.Content{ID: contentID, UserID: userID})
	return nil
}

// publishEvent emits a content event to the broker when one is attached.
// Publishing is best effort; a broker failure never fails the request that
// already committed to the store.
func (s *ContentService) publishEvent(event string, content *models.Content) {
	if s.mqClient == nil {
		return
	}
	message := map[string]interface{}{
		"event":     event,
		"contentId": content.ID,
		"userId":    content.UserID,
		"link":      content.Link,
		"type":      content.Type,
	}
	if err := s.mqClient.PublishContentEvent(message); err != nil {
		log.Printf("Failed to publish %s event for content %s: %v", event, content.ID, err)
	}
}
