package repositories

import (
	"errors"
	"fmt"

	"weathermap/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMRatingRepository is a GORM implementation of RatingRepository.
type GORMRatingRepository struct {
	db *gorm.DB
}

// NewGORMRatingRepository creates a new instance of GORMRatingRepository.
func NewGORMRatingRepository(db *gorm.DB) *GORMRatingRepository {
	return &GORMRatingRepository{
		db: db,
	}
}

// Upsert inserts the rating, or updates the value of the existing row for
// the same user. The ON CONFLICT clause runs against the unique user_id
// index, so two concurrent submissions from one user cannot produce two
// rows. The canonical row (original id, refreshed timestamp) is returned.
func (r *GORMRatingRepository) Upsert(rating *models.Rating) (*models.Rating, error) {
	if rating.ID == "" {
		rating.ID = uuid.New().String()
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(rating).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert rating: %w", err)
	}

	var stored models.Rating
	if err := r.db.First(&stored, "user_id = ?", rating.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("rating for user %s: %w", rating.UserID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load upserted rating: %w", err)
	}
	return &stored, nil
}

// List returns every rating. No owner filter, the global average is
// computed over all of them.
func (r *GORMRatingRepository) List() ([]models.Rating, error) {
	var ratings []models.Rating
	if err := r.db.Find(&ratings).Error; err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}
	return ratings, nil
}
