package indexer

import (
	"context"
	"fmt"

	"hotel-indexer/core/cursor"
	coreindexer "hotel-indexer/core/indexer"
	"hotel-indexer/core/logger"
	"hotel-indexer/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Runner is the part of the sync runner the trigger drives.
type Runner interface {
	RunCycle(ctx context.Context) (*coreindexer.CycleResult, error)
	Status() coreindexer.Status
	Cursor(ctx context.Context) (*cursor.Cursor, error)
}

// Handler handles HTTP requests for the indexer trigger.
type Handler struct {
	runner Runner
	secret string
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(runner Runner, secret string, logger *zap.Logger) *Handler {
	return &Handler{runner: runner, secret: secret, logger: logger}
}

// RegisterRoutes registers the indexer routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/indexer")
	group.Get("/run", h.HandleRun)
	group.Post("/run", h.HandleRun)
	group.Get("/status", h.HandleStatus)
}

// StatusResponse is the body of GET /indexer/status.
type StatusResponse struct {
	Cursor *cursor.Cursor `json:"cursor"`
	coreindexer.Status
}

// HandleRun runs one sync cycle.
// @Summary Run Indexer Cycle
// @Description Fetch one page of contract events after the persisted cursor, apply it to the mirror and advance the cursor. Meant for an external cron.
// @Tags indexer
// @Produce json
// @Param Authorization header string true "Bearer <cron secret>"
// @Success 200 {object} map[string]interface{} "Cycle summary"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /indexer/run [post]
// @Router /indexer/run [get]
func (h *Handler) HandleRun(c *fiber.Ctx) error {
	if h.secret == "" || !auth.Equal(auth.BearerToken(c), h.secret) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	l := logger.WithRayID(h.logger, c)
	l.Info("Indexer run triggered")

	res, err := h.runner.RunCycle(c.Context())
	if err != nil {
		l.Error("Indexer run failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to run indexer job.",
			"details": err.Error(),
		})
	}

	if res.Fetched == 0 {
		return c.JSON(fiber.Map{"message": "No new events.", "processed": 0})
	}
	return c.JSON(fiber.Map{
		"message":   fmt.Sprintf("Successfully processed %d events.", res.Fetched),
		"processed": res.Fetched,
		"result":    res,
	})
}

// HandleStatus reports the persisted cursor and the last cycle outcome.
// @Summary Indexer Status
// @Description Read the persisted event cursor and the outcome of the most recent cycle run by this process.
// @Tags indexer
// @Produce json
// @Success 200 {object} StatusResponse "Indexer status"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /indexer/status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	cur, err := h.runner.Cursor(c.Context())
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Failed to load cursor", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to fetch cursor",
			"details": err.Error(),
		})
	}
	return c.JSON(StatusResponse{Cursor: cur, Status: h.runner.Status()})
}
