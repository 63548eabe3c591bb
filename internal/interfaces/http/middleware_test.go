package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/pos-api/internal/interfaces/http"
	"github.com/jhoicas/pos-api/pkg/config"
	pkgjwt "github.com/jhoicas/pos-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "pos-api-test"
	testExpMin    = 60

	defaultUserID    = "58c872aa3ce7d5fc688b49bc"
	defaultCompanyID = "58c872aa3ce7d5fc688b49bd"
	otherCompanyID   = "aaaaaaaaaaaaaaaaaaaaaaaa"
)

// buildTestApp construye una aplicación Fiber mínima con el AuthMiddleware y
// una ruta por inquilino que aplica RequireCompany, igual que los handlers
// reales.
func buildTestApp() *fiber.App {
	app := fiber.New()
	app.Use(apphttp.AuthMiddleware(testJWTSecret, config.AuthConfig{
		DefaultCompanyID: defaultCompanyID,
		DefaultUserID:    defaultUserID,
	}))
	app.Get("/data/:companyId/catalog", func(c *fiber.Ctx) error {
		companyID, ok := apphttp.RequireCompany(c)
		if !ok {
			return nil
		}
		return c.JSON(fiber.Map{
			"company": companyID,
			"user":    apphttp.GetUserID(c),
		})
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware + RequireCompany
// ──────────────────────────────────────────────────────────────────────────────

// Sin token la petición cae a la identidad por defecto y alcanza su inquilino.
func TestAuth_SinTokenUsaIdentidadPorDefecto(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, "/data/"+defaultCompanyID+"/catalog", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, defaultCompanyID, body["company"])
	assert.Equal(t, defaultUserID, body["user"])
}

// Un Bearer válido reemplaza la identidad por defecto por la del token.
func TestAuth_TokenValidoCargaClaims(t *testing.T) {
	app := buildTestApp()

	token, err := pkgjwt.Generate(testJWTSecret, "u-123", otherCompanyID, "cashier", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "/data/"+otherCompanyID+"/catalog", "Bearer "+token)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, otherCompanyID, body["company"])
	assert.Equal(t, "u-123", body["user"])
}

// Un token roto no corta la petición: se cae a la identidad por defecto.
func TestAuth_TokenInvalidoCaeAlDefecto(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, "/data/"+defaultCompanyID+"/catalog", "Bearer no-es-un-jwt")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, defaultCompanyID, body["company"])
}

// El guard de inquilino: pedir datos de otra empresa responde 403 con el
// sobre legado.
func TestRequireCompany_OtroInquilinoRecibe403(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, "/data/"+otherCompanyID+"/catalog", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, false, body["status"])
	assert.Equal(t, "Access denied", body["error"])
}

// El token manda: con claims de la empresa A no se alcanza la empresa B
// aunque B sea la empresa por defecto.
func TestRequireCompany_TokenDeOtraEmpresaNoAlcanzaLaDefecto(t *testing.T) {
	app := buildTestApp()

	token, err := pkgjwt.Generate(testJWTSecret, "u-123", otherCompanyID, "cashier", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "/data/"+defaultCompanyID+"/catalog", "Bearer "+token)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
