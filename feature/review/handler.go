package review

import (
	"hotel-indexer/core/logger"
	"hotel-indexer/core/mirror"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for reviews.
type Handler struct {
	store  mirror.Store
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(store mirror.Store, logger *zap.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// RegisterRoutes registers the review routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/hotels/:hotelId/reviews", h.HandleListHotelReviews)
}

// HandleListHotelReviews lists the reviews of a hotel.
// @Summary List Hotel Reviews
// @Description List the indexed reviews of a hotel, newest first.
// @Tags reviews
// @Produce json
// @Param hotelId path string true "Hotel object id"
// @Success 200 {array} mirror.Review "Reviews"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /hotels/{hotelId}/reviews [get]
func (h *Handler) HandleListHotelReviews(c *fiber.Ctx) error {
	reviews, err := h.store.ListReviewsByHotel(c.Context(), c.Params("hotelId"))
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Failed to list reviews", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to fetch reviews",
			"details": err.Error(),
		})
	}
	return c.JSON(reviews)
}
