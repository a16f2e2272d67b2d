package serverutils

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"notes-be/internal/pkg/security"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type silentLogger struct{}

func (silentLogger) Debug(module, message string, details map[string]interface{}) {}
func (silentLogger) Info(module, message string, details map[string]interface{})  {}
func (silentLogger) Warn(module, message string, details map[string]interface{})  {}
func (silentLogger) Error(module, message string, details map[string]interface{}) {}
func (silentLogger) Sync() error                                                  { return nil }

func newAuthTestApp(tokens *security.TokenManager) *fiber.App {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(silentLogger{}))
	app.Get("/whoami", JwtMiddleware(tokens), func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"user_id": CallerId(ctx)})
	})
	return app
}

func TestJwtMiddleware(t *testing.T) {
	tokens := security.NewTokenManager("mw-secret", time.Hour)
	app := newAuthTestApp(tokens)

	t.Run("Valid token", func(t *testing.T) {
		token, err := tokens.Issue(15)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"user_id":15}`, string(body))
	})

	t.Run("Missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Not a bearer scheme", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Tampered token", func(t *testing.T) {
		token, err := tokens.Issue(15)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token+"x")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
