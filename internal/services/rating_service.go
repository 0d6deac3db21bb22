package services

import (
	"fmt"
	"log"

	"weathermap/internal/models"
	"weathermap/internal/repositories"
	"weathermap/pkg/rabbitmq"
)

// RatingService handles business logic for app ratings.
type RatingService struct {
	ratingRepo repositories.RatingRepository
	mqClient   *rabbitmq.Client
}

// NewRatingService creates a new RatingService.
func NewRatingService(ratingRepo repositories.RatingRepository, mqClient *rabbitmq.Client) *RatingService {
	return &RatingService{
		ratingRepo: ratingRepo,
		mqClient:   mqClient,
	}
}

// Submit records the user's rating. A user who already rated gets their
// existing row updated in place; there is never more than one row per user.
func (s *RatingService) Submit(userID string, value int) (*models.Rating, error) {
	if value < 1 || value > 5 {
		return nil, fmt.Errorf("%w: rating value must be between 1 and 5", ErrValidation)
	}

	rating, err := s.ratingRepo.Upsert(&models.Rating{
		Value:  value,
		UserID: userID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to submit rating: %w", err)
	}

	if s.mqClient != nil {
		err := s.mqClient.PublishActivity("rating.submitted", map[string]interface{}{
			"ratingID": rating.ID,
			"userID":   rating.UserID,
			"value":    rating.Value,
		})
		if err != nil {
			log.Printf("Warning: Failed to publish rating submitted event for rating %s: %v", rating.ID, err)
		}
	}

	return rating, nil
}

// List returns all ratings so the client can show a global average.
func (s *RatingService) List() ([]models.Rating, error) {
	return s.ratingRepo.List()
}
