package repositories

import (
	"errors"
	"fmt"

	"github.com/imshubham07/Brainly/internal/apperrors"
	"github.com/imshubham07/Brainly/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMShareLinkRepository is a GORM implementation of ShareLinkRepository.
type GORMShareLinkRepository struct {
	db *gorm.DB
}

// NewGORMShareLinkRepository creates a new instance of GORMShareLinkRepository.
func NewGORMShareLinkRepository(db *gorm.DB) *GORMShareLinkRepository {
	return &GORMShareLinkRepository{
		db: db,
	}
}

// CreateIfAbsent inserts the link with ON CONFLICT DO NOTHING on the unique
// user column, then re-reads when the insert lost. Two concurrent enables
// for the same user converge on a single row without a read-then-write race.
func (r *GORMShareLinkRepository) CreateIfAbsent(link *models.ShareLink) (*models.ShareLink, error) {
	if link.ID == "" {
		link.ID = uuid.New().String()
	}
	res := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(link)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to create share link: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// Another link already exists for this user; return it unchanged.
		return r.GetByUserID(link.UserID)
	}
	return link, nil
}

// GetByUserID retrieves the share link owned by the given user.
func (r *GORMShareLinkRepository) GetByUserID(userID string) (*models.ShareLink, error) {
	var link models.ShareLink
	if err := r.db.First(&link, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("share link for user %s: %w", userID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get share link for user %s: %w", userID, err)
	}
	return &link, nil
}

// GetByHash retrieves a share link by its public hash.
func (r *GORMShareLinkRepository) GetByHash(hash string) (*models.ShareLink, error) {
	var link models.ShareLink
	if err := r.db.First(&link, "hash = ?", hash).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("share link %s: %w", hash, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get share link by hash: %w", err)
	}
	return &link, nil
}

// DeleteByUserID removes the user's share link. Deleting an absent link is
// not an error.
func (r *GORMShareLinkRepository) DeleteByUserID(userID string) error {
	if err := r.db.Delete(&models.ShareLink{}, "user_id = ?", userID).Error; err != nil {
		return fmt.Errorf("failed to delete share link for user %s: %w", userID, err)
	}
	return nil
}
