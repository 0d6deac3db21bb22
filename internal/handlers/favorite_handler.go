package handlers

import (
	"errors"
	"log"

	"weathermap/internal/middleware"
	"weathermap/internal/repositories"
	"weathermap/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// FavoriteHandler handles HTTP requests for saved locations.
type FavoriteHandler struct {
	service  *services.FavoriteService
	validate *validator.Validate
}

// NewFavoriteHandler creates a new FavoriteHandler.
func NewFavoriteHandler(service *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the favorite routes. All of them require auth.
func (h *FavoriteHandler) RegisterRoutes(router fiber.Router) {
	favoriteRoutes := router.Group("/favorites")
	favoriteRoutes.Get("/", h.HandleListFavorites)
	favoriteRoutes.Post("/", h.HandleCreateFavorite)
	favoriteRoutes.Delete("/:id", h.HandleDeleteFavorite)
}

// FavoriteRequest represents the request body for saving a favorite.
type FavoriteRequest struct {
	LocationName string `json:"locationName" validate:"required"`
	Coordinates  string `json:"coordinates" validate:"required"`
}

// HandleListFavorites returns only the caller's favorites.
func (h *FavoriteHandler) HandleListFavorites(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	favorites, err := h.service.ListByUser(user.ID)
	if err != nil {
		log.Printf("Error listing favorites for user %s: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch favorites",
		})
	}
	return c.JSON(favorites)
}

// HandleCreateFavorite saves a favorite for the caller. A duplicate of the
// same coordinates string is a 409.
func (h *FavoriteHandler) HandleCreateFavorite(c *fiber.Ctx) error {
	var req FavoriteRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing favorite request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	user := middleware.CurrentUser(c)
	favorite, err := h.service.Create(user.ID, req.LocationName, req.Coordinates)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyFavorite) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Location already in favorites",
			})
		}
		if errors.Is(err, services.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		log.Printf("Error creating favorite: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create favorite",
		})
	}

	return c.JSON(favorite)
}

// HandleDeleteFavorite removes one of the caller's favorites. A favorite
// that does not exist or belongs to someone else is a 404 either way.
func (h *FavoriteHandler) HandleDeleteFavorite(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	favoriteID := c.Params("id")

	if err := h.service.Delete(favoriteID, user.ID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Favorite not found",
			})
		}
		log.Printf("Error deleting favorite %s: %v", favoriteID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete favorite",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}
