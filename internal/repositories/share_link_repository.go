package repositories

import "github.com/imshubham07/Brainly/internal/models"

// ShareLinkRepository defines the interface for share link data access.
type ShareLinkRepository interface {
	// CreateIfAbsent inserts the link unless the user already has one and
	// returns the row that ended up active for the user.
	CreateIfAbsent(link *models.ShareLink) (*models.ShareLink, error)
	GetByUserID(userID string) (*models.ShareLink, error)
	GetByHash(hash string) (*models.ShareLink, error)
	DeleteByUserID(userID string) error
}
