package services_test

import (
	"testing"

	"weathermap/internal/models"
	"weathermap/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRatingRepository is a mock implementation of repositories.RatingRepository
type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) Upsert(rating *models.Rating) (*models.Rating, error) {
	args := m.Called(rating)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingRepository) List() ([]models.Rating, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rating), args.Error(1)
}

func TestRatingService_Submit(t *testing.T) {
	mockRepo := new(MockRatingRepository)
	ratingService := services.NewRatingService(mockRepo, nil)

	// Boundary values 1 and 5 are accepted
	for _, value := range []int{1, 5} {
		stored := &models.Rating{ID: "rating-1", UserID: "user-123", Value: value}
		mockRepo.On("Upsert", mock.MatchedBy(func(r *models.Rating) bool {
			return r.UserID == "user-123" && r.Value == value
		})).Return(stored, nil).Once()

		rating, err := ratingService.Submit("user-123", value)
		assert.NoError(t, err)
		assert.Equal(t, value, rating.Value)
	}
	mockRepo.AssertExpectations(t)

	// Out-of-range values are rejected before the repository is touched
	for _, value := range []int{0, 6, -1} {
		_, err := ratingService.Submit("user-123", value)
		assert.ErrorIs(t, err, services.ErrValidation)
	}
	mockRepo.AssertNumberOfCalls(t, "Upsert", 2)
}

func TestRatingService_List(t *testing.T) {
	mockRepo := new(MockRatingRepository)
	ratingService := services.NewRatingService(mockRepo, nil)

	mockRepo.On("List").Return([]models.Rating{
		{ID: "r1", UserID: "user-1", Value: 4},
		{ID: "r2", UserID: "user-2", Value: 2},
	}, nil).Once()

	ratings, err := ratingService.List()
	assert.NoError(t, err)
	assert.Len(t, ratings, 2)

	sum := 0
	for _, r := range ratings {
		sum += r.Value
	}
	assert.InDelta(t, 3.0, float64(sum)/float64(len(ratings)), 0.0001)
	mockRepo.AssertExpectations(t)
}
