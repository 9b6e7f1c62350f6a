package favorite

import (
	"errors"

	"hotel-indexer/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for favourites.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the favourite routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/rooms/:roomId/favorites", h.HandleAddFavorite)
	app.Delete("/rooms/:roomId/favorites", h.HandleRemoveFavorite)
	app.Get("/favorites", h.HandleListFavorites)
}

type favoriteRequest struct {
	UserID string `json:"userId"`
}

func parseUserID(c *fiber.Ctx) string {
	var req favoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return ""
	}
	return req.UserID
}

// HandleAddFavorite favourites a room.
// @Summary Add Favorite
// @Description Favourite a room for a wallet address. Adding an existing favourite returns it with 200.
// @Tags favorites
// @Accept json
// @Produce json
// @Param roomId path string true "Room object id"
// @Param body body favoriteRequest true "Favourite owner"
// @Success 200 {object} Favorite "Existing favourite"
// @Success 201 {object} Favorite "Created favourite"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /rooms/{roomId}/favorites [post]
func (h *Handler) HandleAddFavorite(c *fiber.Ctx) error {
	userID := parseUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "userId is required"})
	}

	fav, created, err := h.service.Add(c.Context(), c.Params("roomId"), userID)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Failed to add favorite", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if created {
		return c.Status(fiber.StatusCreated).JSON(fav)
	}
	return c.JSON(fav)
}

// HandleRemoveFavorite removes a favourite.
// @Summary Remove Favorite
// @Description Remove a room from a wallet address's favourites.
// @Tags favorites
// @Accept json
// @Produce json
// @Param roomId path string true "Room object id"
// @Param body body favoriteRequest true "Favourite owner"
// @Success 200 {object} map[string]bool "Removed"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /rooms/{roomId}/favorites [delete]
func (h *Handler) HandleRemoveFavorite(c *fiber.Ctx) error {
	userID := parseUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "userId is required"})
	}

	if err := h.service.Remove(c.Context(), c.Params("roomId"), userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Favorite not found"})
		}
		logger.WithRayID(h.service.logger, c).Error("Failed to remove favorite", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleListFavorites lists a user's favourites.
// @Summary List Favorites
// @Description List the rooms favourited by a wallet address.
// @Tags favorites
// @Produce json
// @Param userId query string true "Wallet address"
// @Success 200 {array} Favorite "Favourites"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /favorites [get]
func (h *Handler) HandleListFavorites(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "userId is required"})
	}

	favorites, err := h.service.ListByUser(c.Context(), userID)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Failed to list favorites", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(favorites)
}
