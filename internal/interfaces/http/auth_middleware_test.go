package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/stock-ledger/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/stock-ledger/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testSubject   = "operador-1"
	testIssuer    = "stock-ledger-test"
	testExpMin    = 60
)

// buildAuthApp construye una aplicación Fiber mínima con AuthMiddleware y un handler
// que devuelve los claims cargados en locals.
func buildAuthApp(secret string) *fiber.App {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(secret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"subject": apphttp.GetSubject(c),
			"role":    apphttp.GetRole(c),
		})
	})
	return app
}

func bearer(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testSubject, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func doAuthRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	resp := doAuthRequest(t, buildAuthApp(testJWTSecret), bearer(t, "bodeguero"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testSubject, body["subject"])
	assert.Equal(t, "bodeguero", body["role"])
}

func TestAuthMiddleware_SinHeader_Retorna401(t *testing.T) {
	resp := doAuthRequest(t, buildAuthApp(testJWTSecret), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", errorCode(t, resp))
}

func TestAuthMiddleware_FormatoInvalido_Retorna401(t *testing.T) {
	resp := doAuthRequest(t, buildAuthApp(testJWTSecret), "Token abc")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", errorCode(t, resp))
}

func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	resp := doAuthRequest(t, buildAuthApp(testJWTSecret), "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_SecretIncorrecto_Retorna401(t *testing.T) {
	resp := doAuthRequest(t, buildAuthApp("otro-secret-completamente-distinto"), bearer(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Sin secret configurado la autenticación queda deshabilitada.
func TestAuthMiddleware_SinSecret_DejaPasar(t *testing.T) {
	resp := doAuthRequest(t, buildAuthApp(""), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
