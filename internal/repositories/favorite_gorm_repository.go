package repositories

import (
	"errors"
	"fmt"

	"weathermap/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMFavoriteRepository is a GORM implementation of FavoriteRepository.
type GORMFavoriteRepository struct {
	db *gorm.DB
}

// NewGORMFavoriteRepository creates a new instance of GORMFavoriteRepository.
func NewGORMFavoriteRepository(db *gorm.DB) *GORMFavoriteRepository {
	return &GORMFavoriteRepository{
		db: db,
	}
}

// Create persists a new favorite. The unique index on (user_id, coordinates)
// rejects duplicates, which surface as ErrDuplicate.
func (r *GORMFavoriteRepository) Create(favorite *models.Favorite) error {
	if favorite.ID == "" {
		favorite.ID = uuid.New().String()
	}
	if err := r.db.Create(favorite).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("favorite for coordinates %s: %w", favorite.Coordinates, ErrDuplicate)
		}
		return fmt.Errorf("failed to create favorite: %w", err)
	}
	return nil
}

// ListByUser returns the user's favorites, newest first.
func (r *GORMFavoriteRepository) ListByUser(userID string) ([]models.Favorite, error) {
	var favorites []models.Favorite
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&favorites).Error; err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return favorites, nil
}

// Delete removes a favorite owned by userID. A missing record and a record
// owned by someone else are both reported as ErrNotFound.
func (r *GORMFavoriteRepository) Delete(id, userID string) error {
	res := r.db.Delete(&models.Favorite{}, "id = ? AND user_id = ?", id, userID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete favorite: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("favorite with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
