package room

import (
	"errors"

	"hotel-indexer/core/logger"
	"hotel-indexer/core/mirror"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for rooms.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the room routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/rooms/:roomId", h.HandleGetRoom)
	app.Get("/hotels/:hotelId/rooms", h.HandleListHotelRooms)
	app.Get("/hotels/:hotelId/rooms/:roomId", h.HandleGetHotelRoom)
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	logger.WithRayID(h.service.logger, c).Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   msg,
		"details": err.Error(),
	})
}

// HandleGetRoom returns a single room.
// @Summary Get Room
// @Description Get an indexed room by its on-chain object id.
// @Tags rooms
// @Produce json
// @Param roomId path string true "Room object id"
// @Success 200 {object} mirror.Room "Room"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /rooms/{roomId} [get]
func (h *Handler) HandleGetRoom(c *fiber.Ctx) error {
	room, err := h.service.GetRoom(c.Context(), c.Params("roomId"))
	if errors.Is(err, mirror.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Room not found"})
	}
	if err != nil {
		return h.fail(c, "Failed to fetch room", err)
	}
	return c.JSON(room)
}

// HandleListHotelRooms lists the rooms of a hotel.
// @Summary List Hotel Rooms
// @Description List the indexed rooms of a hotel.
// @Tags rooms
// @Produce json
// @Param hotelId path string true "Hotel object id"
// @Success 200 {array} mirror.Room "Rooms"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /hotels/{hotelId}/rooms [get]
func (h *Handler) HandleListHotelRooms(c *fiber.Ctx) error {
	rooms, err := h.service.ListRooms(c.Context(), c.Params("hotelId"))
	if err != nil {
		return h.fail(c, "Failed to fetch rooms", err)
	}
	return c.JSON(rooms)
}

// HandleGetHotelRoom returns a room scoped to its hotel.
// @Summary Get Hotel Room
// @Description Get a room, failing with 404 when it belongs to a different hotel.
// @Tags rooms
// @Produce json
// @Param hotelId path string true "Hotel object id"
// @Param roomId path string true "Room object id"
// @Success 200 {object} mirror.Room "Room"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /hotels/{hotelId}/rooms/{roomId} [get]
func (h *Handler) HandleGetHotelRoom(c *fiber.Ctx) error {
	room, err := h.service.GetHotelRoom(c.Context(), c.Params("hotelId"), c.Params("roomId"))
	switch {
	case errors.Is(err, mirror.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Room not found"})
	case errors.Is(err, ErrWrongHotel):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Room does not belong to this hotel"})
	case err != nil:
		return h.fail(c, "Failed to fetch room for hotel", err)
	}
	return c.JSON(room)
}
