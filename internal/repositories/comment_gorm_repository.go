package repositories

import (
	"fmt"

	"weathermap/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCommentRepository is a GORM implementation of CommentRepository.
type GORMCommentRepository struct {
	db *gorm.DB
}

// NewGORMCommentRepository creates a new instance of GORMCommentRepository.
func NewGORMCommentRepository(db *gorm.DB) *GORMCommentRepository {
	return &GORMCommentRepository{
		db: db,
	}
}

// Create persists a new comment and reloads it with the author relation so
// the caller gets the denormalized user fields back.
func (r *GORMCommentRepository) Create(comment *models.Comment) error {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	if err := r.db.Create(comment).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	if err := r.db.Preload("User").First(comment, "id = ?", comment.ID).Error; err != nil {
		return fmt.Errorf("failed to load created comment: %w", err)
	}
	return nil
}

// List returns the newest comments first, up to limit, with their authors.
func (r *GORMCommentRepository) List(limit int) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.Preload("User").Order("created_at DESC").Limit(limit).Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}
