package repositories

import "weathermap/internal/models"

// CommentRepository defines the interface for comment data access.
type CommentRepository interface {
	Create(comment *models.Comment) error
	List(limit int) ([]models.Comment, error)
}
