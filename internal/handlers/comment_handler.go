package handlers

import (
	"errors"
	"log"

	"weathermap/internal/middleware"
	"weathermap/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CommentHandler handles HTTP requests for map comments.
type CommentHandler struct {
	service  *services.CommentService
	validate *validator.Validate
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(service *services.CommentService) *CommentHandler {
	return &CommentHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the comment routes. All of them require auth.
func (h *CommentHandler) RegisterRoutes(router fiber.Router) {
	commentRoutes := router.Group("/comments")
	commentRoutes.Get("/", h.HandleListComments)
	commentRoutes.Post("/", h.HandleCreateComment)
}

// CommentRequest represents the request body for creating a comment.
type CommentRequest struct {
	CommentText string `json:"commentText" validate:"required"`
	MapLocation string `json:"mapLocation"`
}

// HandleListComments returns the newest comments with their authors.
func (h *CommentHandler) HandleListComments(c *fiber.Ctx) error {
	comments, err := h.service.List()
	if err != nil {
		log.Printf("Error listing comments: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch comments",
		})
	}
	return c.JSON(comments)
}

// HandleCreateComment creates a comment authored by the caller.
func (h *CommentHandler) HandleCreateComment(c *fiber.Ctx) error {
	var req CommentRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing comment request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	user := middleware.CurrentUser(c)
	comment, err := h.service.Create(user.ID, req.CommentText, req.MapLocation)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		log.Printf("Error creating comment: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create comment",
		})
	}

	return c.JSON(comment)
}
