package repositories

import "github.com/imshubham07/Brainly/internal/models"

// ContentRepository defines the interface for content data access.
type ContentRepository interface {
	Create(content *models.Content) error
	GetAllByUser(userID string) ([]models.Content, error)
	DeleteOwned(id, userID string) error
}
