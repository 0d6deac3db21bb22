package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"weathermap/internal/models"
	"weathermap/internal/repositories"
	"weathermap/pkg/rabbitmq"
)

// FavoriteService handles business logic for saved map locations.
type FavoriteService struct {
	favoriteRepo repositories.FavoriteRepository
	mqClient     *rabbitmq.Client
}

// NewFavoriteService creates a new FavoriteService.
func NewFavoriteService(favoriteRepo repositories.FavoriteRepository, mqClient *rabbitmq.Client) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		mqClient:     mqClient,
	}
}

// Create saves a favorite for userID. A second favorite with the identical
// coordinates string fails with ErrAlreadyFavorite; the store's unique
// constraint decides, so concurrent duplicates cannot both succeed.
func (s *FavoriteService) Create(userID, locationName, coordinates string) (*models.Favorite, error) {
	if strings.TrimSpace(locationName) == "" {
		return nil, fmt.Errorf("%w: location name is required", ErrValidation)
	}
	if strings.TrimSpace(coordinates) == "" {
		return nil, fmt.Errorf("%w: coordinates are required", ErrValidation)
	}

	favorite := &models.Favorite{
		LocationName: locationName,
		Coordinates:  coordinates,
		UserID:       userID,
	}
	if err := s.favoriteRepo.Create(favorite); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrAlreadyFavorite
		}
		return nil, fmt.Errorf("failed to create favorite: %w", err)
	}

	if s.mqClient != nil {
		err := s.mqClient.PublishActivity("favorite.created", map[string]interface{}{
			"favoriteID":   favorite.ID,
			"userID":       favorite.UserID,
			"locationName": favorite.LocationName,
		})
		if err != nil {
			log.Printf("Warning: Failed to publish favorite created event for favorite %s: %v", favorite.ID, err)
		}
	}

	return favorite, nil
}

// ListByUser returns only the caller's favorites, newest first.
func (s *FavoriteService) ListByUser(userID string) ([]models.Favorite, error) {
	return s.favoriteRepo.ListByUser(userID)
}

// Delete removes one of the caller's favorites. Someone else's favorite is
// reported as not found, same as a missing one.
func (s *FavoriteService) Delete(id, userID string) error {
	if err := s.favoriteRepo.Delete(id, userID); err != nil {
		return err
	}

	if s.mqClient != nil {
		err := s.mqClient.PublishActivity("favorite.deleted", map[string]interface{}{
			"favoriteID": id,
			"userID":     userID,
		})
		if err != nil {
			log.Printf("Warning: Failed to publish favorite deleted event for favorite %s: %v", id, err)
		}
	}

	return nil
}
