package reservation

import (
	"errors"

	"hotel-indexer/core/logger"
	"hotel-indexer/core/mirror"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for reservations.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the reservation routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/reservations")
	group.Get("/", h.HandleListReservations)
	group.Get("/:reservationId", h.HandleGetReservation)
}

// HandleListReservations lists a guest's reservations.
// @Summary List Reservations
// @Description List the indexed reservations of a guest wallet address.
// @Tags reservations
// @Produce json
// @Param address query string true "Guest address"
// @Success 200 {array} mirror.Reservation "Reservations"
// @Failure 400 {object} map[string]string "Missing address"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /reservations [get]
func (h *Handler) HandleListReservations(c *fiber.Ctx) error {
	address := c.Query("address")
	if address == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing address"})
	}

	reservations, err := h.service.ListByGuest(c.Context(), address)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Failed to list reservations", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to fetch reservations",
			"details": err.Error(),
		})
	}
	return c.JSON(reservations)
}

// HandleGetReservation returns a single reservation.
// @Summary Get Reservation
// @Description Get an indexed reservation by its on-chain object id.
// @Tags reservations
// @Produce json
// @Param reservationId path string true "Reservation object id"
// @Success 200 {object} mirror.Reservation "Reservation"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /reservations/{reservationId} [get]
func (h *Handler) HandleGetReservation(c *fiber.Ctx) error {
	resv, err := h.service.Get(c.Context(), c.Params("reservationId"))
	if errors.Is(err, mirror.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Reservation not found"})
	}
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Failed to fetch reservation", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to fetch reservation",
			"details": err.Error(),
		})
	}
	return c.JSON(resv)
}
