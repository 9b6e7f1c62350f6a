package reservation_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"hotel-indexer/core/mirror"
	"hotel-indexer/core/mirror/mirrortest"
	"hotel-indexer/feature/reservation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestReservationRoutes(t *testing.T) {
	store, _ := mirrortest.NewGormStore(t)
	ctx := context.Background()
	require.NoError(t, store.UpsertReservation(ctx, &mirror.Reservation{ObjectID: "0xres1", GuestAddress: "0xg", IsActive: true}))
	require.NoError(t, store.UpsertReservation(ctx, &mirror.Reservation{ObjectID: "0xres2", GuestAddress: "0xother"}))

	app := fiber.New()
	require.NoError(t, reservation.NewFeature(store, zap.NewNop()).Load(app.Group("/api")))

	t.Run("MissingAddress", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/reservations", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.JSONEq(t, `{"error":"Missing address"}`, string(body))
	})

	t.Run("ByGuest", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/reservations?address=0xg", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var list []mirror.Reservation
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
		require.Len(t, list, 1)
		assert.Equal(t, "0xres1", list[0].ObjectID)
	})

	t.Run("Get", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/reservations/0xres2", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("GetMissing", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/reservations/0xnope", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}
