package services

import (
	"fmt"
	"log"
	"strings"

	"weathermap/internal/models"
	"weathermap/internal/repositories"
	"weathermap/pkg/rabbitmq"
)

// defaultMapLocation is used when a comment is not pinned anywhere specific.
const defaultMapLocation = "General"

// commentPageSize bounds how many comments a single list call returns.
const commentPageSize = 50

// CommentService handles business logic for map comments.
type CommentService struct {
	commentRepo repositories.CommentRepository
	mqClient    *rabbitmq.Client
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo repositories.CommentRepository, mqClient *rabbitmq.Client) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		mqClient:    mqClient,
	}
}

// Create persists a comment authored by userID. The author always comes
// from the authenticated identity, never from the request body.
func (s *CommentService) Create(userID, text, location string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: comment text is required", ErrValidation)
	}
	if strings.TrimSpace(location) == "" {
		location = defaultMapLocation
	}

	comment := &models.Comment{
		CommentText: text,
		MapLocation: location,
		UserID:      userID,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	if s.mqClient != nil {
		err := s.mqClient.PublishActivity("comment.created", map[string]interface{}{
			"commentID":   comment.ID,
			"userID":      comment.UserID,
			"mapLocation": comment.MapLocation,
		})
		if err != nil {
			log.Printf("Warning: Failed to publish comment created event for comment %s: %v", comment.ID, err)
		}
	}

	return comment, nil
}

// List returns the newest comments with their authors, bounded to one page.
func (s *CommentService) List() ([]models.Comment, error) {
	return s.commentRepo.List(commentPageSize)
}
