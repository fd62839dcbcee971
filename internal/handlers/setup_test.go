package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/sharingyatra/yatra-backend/internal/auth"
	"github.com/sharingyatra/yatra-backend/internal/middleware"
	"github.com/sharingyatra/yatra-backend/internal/routes"
	"github.com/sharingyatra/yatra-backend/internal/services"
	"github.com/sharingyatra/yatra-backend/internal/storage"
)

// mailerStub records the latest code issued per email.
type mailerStub struct {
	codes map[string]string
}

func (m *mailerStub) SendOTP(toEmail, code string) error {
	m.codes[toEmail] = code
	return nil
}

type testEnv struct {
	app    *fiber.App
	store  storage.Store
	mailer *mailerStub
}

// newTestEnv wires the full route surface over the in-memory store.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := storage.NewMemoryStore()
	mailer := &mailerStub{codes: make(map[string]string)}
	hasher := auth.NewPasswordHasher()

	app := fiber.New()
	routes.SetupRoutes(app, routes.Deps{
		Store:      store,
		Resolver:   auth.NewResolver(store, hasher),
		Sessions:   auth.NewSessionManager(store, "test-secret"),
		OTPService: services.NewOTPService(store, mailer),
		Hasher:     hasher,
		Version:    "test",
	})

	return &testEnv{app: app, store: store, mailer: mailer}
}

// request performs a JSON request against the app, optionally carrying a
// session cookie.
func (e *testEnv) request(t *testing.T, method, path string, body any, session string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if session != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: session})
	}

	resp, err := e.app.Test(req)
	require.NoError(t, err)
	return resp
}

// decode reads a JSON response body into a generic map.
func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// registerCustomer walks the OTP flow and creates a customer account.
func (e *testEnv) registerCustomer(t *testing.T, email, username, password string) {
	t.Helper()

	resp := e.request(t, http.MethodPost, "/api/generate-otp", fiber.Map{"email": email}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	code := e.mailer.codes[email]
	require.Len(t, code, 6)

	resp = e.request(t, http.MethodPost, "/api/register", fiber.Map{
		"email":    email,
		"phone":    "9999999999",
		"username": username,
		"password": password,
		"otp":      code,
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

// login authenticates and returns the session cookie value.
func (e *testEnv) login(t *testing.T, email, password string) string {
	t.Helper()

	resp := e.request(t, http.MethodPost, "/api/login", fiber.Map{
		"email":    email,
		"password": password,
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	for _, cookie := range resp.Cookies() {
		if cookie.Name == middleware.SessionCookie {
			return cookie.Value
		}
	}
	t.Fatal("login response did not set a session cookie")
	return ""
}
