package services_test

import (
	"testing"

	"weathermap/internal/models"
	"weathermap/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCommentRepository is a mock implementation of repositories.CommentRepository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(comment *models.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) List(limit int) ([]models.Comment, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func TestCommentService_Create(t *testing.T) {
	mockRepo := new(MockCommentRepository)
	commentService := services.NewCommentService(mockRepo, nil)

	// The author id always comes from the caller's identity
	mockRepo.On("Create", mock.MatchedBy(func(c *models.Comment) bool {
		return c.UserID == "user-123" && c.CommentText == "Storm rolling in" && c.MapLocation == "48.85,2.35"
	})).Return(nil).Once()

	comment, err := commentService.Create("user-123", "Storm rolling in", "48.85,2.35")
	assert.NoError(t, err)
	assert.Equal(t, "user-123", comment.UserID)
	mockRepo.AssertExpectations(t)

	// A blank location defaults to "General"
	mockRepo.On("Create", mock.MatchedBy(func(c *models.Comment) bool {
		return c.MapLocation == "General"
	})).Return(nil).Once()

	comment, err = commentService.Create("user-123", "Nice sunset", "  ")
	assert.NoError(t, err)
	assert.Equal(t, "General", comment.MapLocation)
	mockRepo.AssertExpectations(t)

	// Empty text is rejected before the repository is touched
	_, err = commentService.Create("user-123", "   ", "General")
	assert.ErrorIs(t, err, services.ErrValidation)
	mockRepo.AssertNotCalled(t, "Create", mock.MatchedBy(func(c *models.Comment) bool {
		return c.CommentText == "   "
	}))
}

func TestCommentService_List(t *testing.T) {
	mockRepo := new(MockCommentRepository)
	commentService := services.NewCommentService(mockRepo, nil)

	// The page size is fixed at 50
	mockRepo.On("List", 50).Return([]models.Comment{
		{ID: "c2", CommentText: "newer"},
		{ID: "c1", CommentText: "older"},
	}, nil).Once()

	comments, err := commentService.List()
	assert.NoError(t, err)
	assert.Len(t, comments, 2)
	assert.Equal(t, "c2", comments[0].ID)
	mockRepo.AssertExpectations(t)
}
