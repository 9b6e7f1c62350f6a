package hotel

import (
	"errors"
	"strings"

	"hotel-indexer/core/logger"
	"hotel-indexer/core/mirror"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for hotels.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the hotel routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/hotels")
	group.Get("/all", h.HandleListHotels)
	group.Get("/:hotelId", h.HandleGetHotel)
	group.Put("/:hotelId/image", h.HandleSetHotelImage)
}

// SetImageRequest is the body of the hotel image update.
type SetImageRequest struct {
	ImageURL string `json:"imageUrl"`
}

// HandleListHotels lists hotels.
// @Summary List Hotels
// @Description List every indexed hotel, newest first, optionally filtered by owner address.
// @Tags hotels
// @Produce json
// @Param owner query string false "Owner address"
// @Success 200 {array} mirror.Hotel "Hotels"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /hotels/all [get]
func (h *Handler) HandleListHotels(c *fiber.Ctx) error {
	hotels, err := h.service.ListHotels(c.Context(), c.Query("owner"))
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Failed to list hotels", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to fetch hotels",
			"details": err.Error(),
		})
	}
	return c.JSON(hotels)
}

// HandleGetHotel returns a single hotel.
// @Summary Get Hotel
// @Description Get an indexed hotel by its on-chain object id.
// @Tags hotels
// @Produce json
// @Param hotelId path string true "Hotel object id"
// @Success 200 {object} mirror.Hotel "Hotel"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /hotels/{hotelId} [get]
func (h *Handler) HandleGetHotel(c *fiber.Ctx) error {
	hotel, err := h.service.GetHotel(c.Context(), c.Params("hotelId"))
	if errors.Is(err, mirror.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Hotel not found"})
	}
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Failed to fetch hotel", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to fetch hotel",
			"details": err.Error(),
		})
	}
	return c.JSON(hotel)
}

// HandleSetHotelImage sets the off-chain image of a hotel.
// @Summary Set Hotel Image
// @Description Attach an image URL, typically one returned by the media upload, to an indexed hotel. Indexing never overwrites it.
// @Tags hotels
// @Accept json
// @Produce json
// @Param hotelId path string true "Hotel object id"
// @Param request body SetImageRequest true "Image URL"
// @Success 200 {object} mirror.Hotel "Hotel"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /hotels/{hotelId}/image [put]
func (h *Handler) HandleSetHotelImage(c *fiber.Ctx) error {
	var req SetImageRequest
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.ImageURL) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "imageUrl is required"})
	}

	l := logger.WithRayID(h.service.logger, c)
	hotelID := c.Params("hotelId")

	err := h.service.SetImage(c.Context(), hotelID, strings.TrimSpace(req.ImageURL))
	if errors.Is(err, mirror.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Hotel not found"})
	}
	if err != nil {
		l.Error("Failed to set hotel image", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to update hotel",
			"details": err.Error(),
		})
	}

	hotel, err := h.service.GetHotel(c.Context(), hotelID)
	if err != nil {
		l.Error("Failed to fetch hotel", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to fetch hotel",
			"details": err.Error(),
		})
	}
	l.Info("Set hotel image", zap.String("hotel_id", hotelID))
	return c.JSON(hotel)
}
