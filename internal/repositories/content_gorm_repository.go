package repositories

import (
	"fmt"

	"github.com/imshubham07/Brainly/internal/apperrors"
	"github.com/imshubham07/Brainly/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMContentRepository is a GORM implementation of ContentRepository.
type GORMContentRepository struct {
	db *gorm.DB
}

// NewGORMContentRepository creates a new instance of GORMContentRepository.
func NewGORMContentRepository(db *gorm.DB) *GORMContentRepository {
	return &GORMContentRepository{
		db: db,
	}
}

// Create persists a new content record. The write is synchronous; the caller
// only sees success after the store has acknowledged it.
func (r *GORMContentRepository) Create(content *models.Content) error {
	if content.ID == "" {
		content.ID = uuid.New().String()
	}
	if err := r.db.Create(content).Error; err != nil {
		return fmt.Errorf("failed to create content: %w", err)
	}
	return nil
}

// GetAllByUser retrieves all content owned by the given user, in the store's
// insertion order.
func (r *GORMContentRepository) GetAllByUser(userID string) ([]models.Content, error) {
	var contents []models.Content
	if err := r.db.Find(&contents, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get content for user %s: %w", userID, err)
	}
	return contents, nil
}

// DeleteOwned deletes the content record matching both id and owner in a
// single conditional statement, so one user can never remove another user's
// record. Zero rows affected means nothing owned matched.
func (r *GORMContentRepository) DeleteOwned(id, userID string) error {
	res := r.db.Delete(&models.Content{}, "id = ? AND user_id = ?", id, userID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete content %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("content with ID %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}
