package repositories

import "weathermap/internal/models"

// FavoriteRepository defines the interface for favorite data access.
type FavoriteRepository interface {
	Create(favorite *models.Favorite) error
	ListByUser(userID string) ([]models.Favorite, error)
	Delete(id, userID string) error
}
