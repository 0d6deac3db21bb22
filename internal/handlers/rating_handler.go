package handlers

import (
	"errors"
	"log"

	"weathermap/internal/middleware"
	"weathermap/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// RatingHandler handles HTTP requests for app ratings.
type RatingHandler struct {
	service  *services.RatingService
	validate *validator.Validate
}

// NewRatingHandler creates a new RatingHandler.
func NewRatingHandler(service *services.RatingService) *RatingHandler {
	return &RatingHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the rating routes. All of them require auth.
func (h *RatingHandler) RegisterRoutes(router fiber.Router) {
	ratingRoutes := router.Group("/ratings")
	ratingRoutes.Get("/", h.HandleListRatings)
	ratingRoutes.Post("/", h.HandleSubmitRating)
}

// RatingRequest represents the request body for submitting a rating.
type RatingRequest struct {
	Value int `json:"value" validate:"required,gte=1,lte=5"`
}

// HandleListRatings returns every rating; the client computes the average.
func (h *RatingHandler) HandleListRatings(c *fiber.Ctx) error {
	ratings, err := h.service.List()
	if err != nil {
		log.Printf("Error listing ratings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch ratings",
		})
	}
	return c.JSON(ratings)
}

// HandleSubmitRating records the caller's rating, replacing any previous one.
func (h *RatingHandler) HandleSubmitRating(c *fiber.Ctx) error {
	var req RatingRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing rating request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	user := middleware.CurrentUser(c)
	rating, err := h.service.Submit(user.ID, req.Value)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		log.Printf("Error submitting rating: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to submit rating",
		})
	}

	return c.JSON(rating)
}
