package services_test

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/imshubham07/Brainly/internal/apperrors"
	"github.com/imshubham07/Brainly/internal/models"
	"github.com/imshubham07/Brainly/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockShareLinkRepository is a mock implementation of repositories.ShareLinkRepository
type MockShareLinkRepository struct {
	mock.Mock
}

func (m *MockShareLinkRepository) CreateIfAbsent(link *models.ShareLink) (*models.ShareLink, error) {
	args := m.Called(link)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ShareLink), args.Error(1)
}

func (m *MockShareLinkRepository) GetByUserID(userID string) (*models.ShareLink, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ShareLink), args.Error(1)
}

func (m *MockShareLinkRepository) GetByHash(hash string) (*models.ShareLink, error) {
	args := m.Called(hash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ShareLink), args.Error(1)
}

func (m *MockShareLinkRepository) DeleteByUserID(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

func newShareService(shareRepo *MockShareLinkRepository, contentRepo *MockContentRepository, userRepo *MockUserRepository) *services.ShareService {
	return services.NewShareService(shareRepo, contentRepo, userRepo)
}

var shareHashPattern = regexp.MustCompile(`^[a-zA-Z0-9]{12}$`)

func TestShareService_EnableShare(t *testing.T) {
	mockShareRepo := new(MockShareLinkRepository)
	service := newShareService(mockShareRepo, new(MockContentRepository), new(MockUserRepository))

	// First enable: a fresh 12-character alphanumeric hash is generated and
	// the stored row wins
	stored := &models.ShareLink{ID: "l-1", UserID: "user-123", Hash: "abcDEF123456"}
	mockShareRepo.On("CreateIfAbsent", mock.MatchedBy(func(link *models.ShareLink) bool {
		return link.UserID == "user-123" && shareHashPattern.MatchString(link.Hash)
	})).Return(stored, nil).Twice()

	hash, err := service.EnableShare("user-123")
	assert.NoError(t, err)
	assert.Equal(t, "abcDEF123456", hash)

	// Second enable returns the identical hash; the token is never rotated
	hashAgain, err := service.EnableShare("user-123")
	assert.NoError(t, err)
	assert.Equal(t, hash, hashAgain)
	mockShareRepo.AssertExpectations(t)
}

func TestShareService_DisableShare(t *testing.T) {
	mockShareRepo := new(MockShareLinkRepository)
	service := newShareService(mockShareRepo, new(MockContentRepository), new(MockUserRepository))

	// Disabling is idempotent; an absent link is not an error
	mockShareRepo.On("DeleteByUserID", "user-123").Return(nil).Twice()
	assert.NoError(t, service.DisableShare("user-123"))
	assert.NoError(t, service.DisableShare("user-123"))
	mockShareRepo.AssertExpectations(t)
}

func TestShareService_ShareStatus(t *testing.T) {
	mockShareRepo := new(MockShareLinkRepository)
	service := newShareService(mockShareRepo, new(MockContentRepository), new(MockUserRepository))

	// Active link
	mockShareRepo.On("GetByUserID", "user-123").Return(&models.ShareLink{UserID: "user-123", Hash: "abcDEF123456"}, nil).Once()
	isShared, hash, err := service.ShareStatus("user-123")
	assert.NoError(t, err)
	assert.True(t, isShared)
	assert.Equal(t, "abcDEF123456", hash)

	// No link: not shared, not an error
	mockShareRepo.On("GetByUserID", "user-456").Return(nil, fmt.Errorf("share link for user user-456: %w", apperrors.ErrNotFound)).Once()
	isShared, hash, err = service.ShareStatus("user-456")
	assert.NoError(t, err)
	assert.False(t, isShared)
	assert.Empty(t, hash)
	mockShareRepo.AssertExpectations(t)
}

func TestShareService_ResolveShare(t *testing.T) {
	mockShareRepo := new(MockShareLinkRepository)
	mockContentRepo := new(MockContentRepository)
	mockUserRepo := new(MockUserRepository)
	service := newShareService(mockShareRepo, mockContentRepo, mockUserRepo)

	link := &models.ShareLink{ID: "l-1", UserID: "user-123", Hash: "abcDEF123456"}
	owner := &models.User{ID: "user-123", Username: "alice_01"}
	contents := []models.Content{
		{ID: "c-1", UserID: "user-123", Link: "https://youtube.com/x", Type: "youtube", Tags: []string{}},
	}

	// Known hash resolves to the owner's name and full collection
	mockShareRepo.On("GetByHash", "abcDEF123456").Return(link, nil).Once()
	mockUserRepo.On("GetByID", "user-123").Return(owner, nil).Once()
	mockContentRepo.On("GetAllByUser", "user-123").Return(contents, nil).Once()

	username, resolved, err := service.ResolveShare("abcDEF123456")
	assert.NoError(t, err)
	assert.Equal(t, "alice_01", username)
	assert.Equal(t, contents, resolved)

	// The view is live: content added after the link was created shows up
	// on the next resolution
	grown := append(contents, models.Content{ID: "c-2", UserID: "user-123", Link: "https://github.com/y", Type: "github", Tags: []string{}})
	mockShareRepo.On("GetByHash", "abcDEF123456").Return(link, nil).Once()
	mockUserRepo.On("GetByID", "user-123").Return(owner, nil).Once()
	mockContentRepo.On("GetAllByUser", "user-123").Return(grown, nil).Once()

	_, resolved, err = service.ResolveShare("abcDEF123456")
	assert.NoError(t, err)
	assert.Len(t, resolved, 2)

	// Unknown hash
	mockShareRepo.On("GetByHash", "nosuchhash00").Return(nil, fmt.Errorf("share link nosuchhash00: %w", apperrors.ErrNotFound)).Once()
	_, _, err = service.ResolveShare("nosuchhash00")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	mockShareRepo.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
	mockContentRepo.AssertExpectations(t)
}
