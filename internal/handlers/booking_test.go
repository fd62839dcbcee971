package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharingyatra/yatra-backend/internal/models"
)

func (e *testEnv) createBooking(t *testing.T, session string, fields fiber.Map) string {
	t.Helper()

	body := fiber.Map{
		"pickup": "Majestic",
		"drop":   "Mysore Palace",
		"date":   "2026-09-10",
	}
	for k, v := range fields {
		body[k] = v
	}

	resp := e.request(t, http.MethodPost, "/api/bookings/", body, session)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	decoded := decode(t, resp)
	booking := decoded["booking"].(map[string]any)
	return booking["id"].(string)
}

func TestBookingsRequireSession(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodPost, "/api/bookings/", fiber.Map{
		"pickup": "A", "drop": "B", "date": "2026-09-10",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = env.request(t, http.MethodGet, "/api/bookings/", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestBookingLifecycle(t *testing.T) {
	env := newTestEnv(t)
	env.registerCustomer(t, "chris@yatra.test", "chris", "secret123")
	session := env.login(t, "chris@yatra.test", "secret123")

	id := env.createBooking(t, session, fiber.Map{"total_price": 1450.0, "sharing": true})
	assert.Equal(t, fmt.Sprintf("BK%05d", models.BookingSeqStart+1), id)

	resp := env.request(t, http.MethodGet, "/api/bookings/", nil, session)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	bookings := body["bookings"].([]any)
	require.Len(t, bookings, 1)
	first := bookings[0].(map[string]any)
	assert.Equal(t, "Majestic", first["pickup"])
	assert.Equal(t, true, first["sharing"])

	// Updates replace the mutable fields wholesale, so the client
	// resubmits the full trip.
	resp = env.request(t, http.MethodPut, "/api/bookings/"+id, fiber.Map{
		"pickup":      "Kempegowda Bus Station",
		"drop":        "Mysore Palace",
		"date":        "2026-09-12",
		"sharing":     false,
		"total_price": 1600.0,
	}, session)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode(t, resp)["booking"].(map[string]any)
	assert.Equal(t, "Kempegowda Bus Station", updated["pickup"])
	assert.Equal(t, false, updated["sharing"])
	assert.Equal(t, "2026-09-12", updated["date"])
	// Ownership never moves on update.
	assert.Equal(t, first["customer_id"], updated["customer_id"])

	resp = env.request(t, http.MethodDelete, "/api/bookings/"+id, nil, session)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.request(t, http.MethodGet, "/api/bookings/", nil, session)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decode(t, resp)["bookings"])
}

func TestBookingListScopedToOwner(t *testing.T) {
	env := newTestEnv(t)
	env.registerCustomer(t, "a@yatra.test", "alice", "pwa")
	env.registerCustomer(t, "b@yatra.test", "bob", "pwb")

	aliceSession := env.login(t, "a@yatra.test", "pwa")
	bobSession := env.login(t, "b@yatra.test", "pwb")

	env.createBooking(t, aliceSession, fiber.Map{"date": "2026-09-01"})
	env.createBooking(t, aliceSession, fiber.Map{"date": "2026-09-15"})
	env.createBooking(t, bobSession, fiber.Map{"date": "2026-10-01"})

	resp := env.request(t, http.MethodGet, "/api/bookings/", nil, aliceSession)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	bookings := decode(t, resp)["bookings"].([]any)
	require.Len(t, bookings, 2)
	// Newest travel date first.
	assert.Equal(t, "2026-09-15", bookings[0].(map[string]any)["date"])
	assert.Equal(t, "2026-09-01", bookings[1].(map[string]any)["date"])
}

func TestBookingForeignOwnerForbidden(t *testing.T) {
	env := newTestEnv(t)
	env.registerCustomer(t, "a@yatra.test", "alice", "pwa")
	env.registerCustomer(t, "b@yatra.test", "bob", "pwb")

	aliceSession := env.login(t, "a@yatra.test", "pwa")
	bobSession := env.login(t, "b@yatra.test", "pwb")

	id := env.createBooking(t, aliceSession, nil)

	resp := env.request(t, http.MethodPut, "/api/bookings/"+id, fiber.Map{"pickup": "Hijacked"}, bobSession)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "User not authorized to update this booking", decode(t, resp)["message"])

	resp = env.request(t, http.MethodDelete, "/api/bookings/"+id, nil, bobSession)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "User not authorized to delete this booking", decode(t, resp)["message"])

	// Alice's booking is untouched.
	resp = env.request(t, http.MethodGet, "/api/bookings/", nil, aliceSession)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	bookings := decode(t, resp)["bookings"].([]any)
	require.Len(t, bookings, 1)
	assert.Equal(t, "Majestic", bookings[0].(map[string]any)["pickup"])
}

func TestBookingNotFound(t *testing.T) {
	env := newTestEnv(t)
	env.registerCustomer(t, "chris@yatra.test", "chris", "secret123")
	session := env.login(t, "chris@yatra.test", "secret123")

	resp := env.request(t, http.MethodPut, "/api/bookings/BK99999", fiber.Map{"pickup": "X"}, session)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Booking not found", decode(t, resp)["message"])

	resp = env.request(t, http.MethodDelete, "/api/bookings/BK99999", nil, session)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestBookingCreateValidation(t *testing.T) {
	env := newTestEnv(t)
	env.registerCustomer(t, "chris@yatra.test", "chris", "secret123")
	session := env.login(t, "chris@yatra.test", "secret123")

	resp := env.request(t, http.MethodPost, "/api/bookings/", fiber.Map{"pickup": "A"}, session)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Pickup, drop and date are required", decode(t, resp)["message"])
}
