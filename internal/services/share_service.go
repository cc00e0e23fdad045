package services

import (
	"errors"
	"fmt"

	"github.com/imshubham07/Brainly/internal/apperrors"
	"github.com/imshubham07/Brainly/internal/models"
	"github.com/imshubham07/Brainly/internal/repositories"
	"github.com/imshubham07/Brainly/pkg/utils"
)

// shareHashLength is the size of the public share token. 62^12 possible
// values keeps accidental collisions and guessing out of reach.
const shareHashLength = 12

// ShareService manages the public share link of a user's collection.
type ShareService struct {
	shareRepo   repositories.ShareLinkRepository
	contentRepo repositories.ContentRepository
	userRepo    repositories.UserRepository
}

// NewShareService creates a new ShareService.
func NewShareService(shareRepo repositories.ShareLinkRepository, contentRepo repositories.ContentRepository, userRepo repositories.UserRepository) *ShareService {
	return &ShareService{
		shareRepo:   shareRepo,
		contentRepo: contentRepo,
		userRepo:    userRepo,
	}
}

// EnableShare activates sharing for the user and returns the share hash.
// When a link already exists its hash is returned unchanged; enabling never
// rotates an active token.
func (s *ShareService) EnableShare(userID string) (string, error) {
	hash, err := utils.GenerateToken(shareHashLength)
	if err != nil {
		return "", fmt.Errorf("failed to generate share hash: %w", err)
	}

	link, err := s.shareRepo.CreateIfAbsent(&models.ShareLink{
		UserID: userID,
		Hash:   hash,
	})
	if err != nil {
		return "", fmt.Errorf("failed to enable sharing: %w", err)
	}
	return link.Hash, nil
}

// DisableShare removes the user's share link. Disabling when no link exists
// is a no-op.
func (s *ShareService) DisableShare(userID string) error {
	return s.shareRepo.DeleteByUserID(userID)
}

// ShareStatus reports whether the user currently shares their collection
// and, if so, under which hash.
func (s *ShareService) ShareStatus(userID string) (bool, string, error) {
	link, err := s.shareRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, "", nil
		}
		return false, "", err
	}
	return true, link.Hash, nil
}

// ResolveShare looks up a public hash and returns the owner's username with
// their full content collection. The view is live: it reflects the owner's
// collection at call time, not at link creation time.
func (s *ShareService) ResolveShare(hash string) (string, []models.Content, error) {
	link, err := s.shareRepo.GetByHash(hash)
	if err != nil {
		return "", nil, err
	}

	user, err := s.userRepo.GetByID(link.UserID)
	if err != nil {
		return "", nil, err
	}

	contents, err := s.contentRepo.GetAllByUser(link.UserID)
	if err != nil {
		return "", nil, err
	}
	return user.Username, contents, nil
}
