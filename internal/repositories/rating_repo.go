package repositories

import "weathermap/internal/models"

// RatingRepository defines the interface for rating data access.
type RatingRepository interface {
	Upsert(rating *models.Rating) (*models.Rating, error)
	List() ([]models.Rating, error)
}
