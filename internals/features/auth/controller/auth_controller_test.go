// file: internals/features/auth/controller/auth_controller_test.go
package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loginApp(users map[string]string) *fiber.App {
	app := fiber.New()
	ctl := &AuthController{Users: users}
	app.Post("/login", ctl.Login)
	return app
}

func postLogin(t *testing.T, app *fiber.App, body string) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return resp, payload
}

func TestLoginSuccess(t *testing.T) {
	app := loginApp(map[string]string{"Ahmed": "Ahmed"})

	resp, payload := postLogin(t, app, `{"username":"Ahmed","password":"Ahmed"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, "Ahmed", payload["username"])
}

func TestLoginWrongPassword(t *testing.T) {
	app := loginApp(map[string]string{"Ahmed": "Ahmed"})

	resp, payload := postLogin(t, app, `{"username":"Ahmed","password":"autre"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, false, payload["success"])
	assert.Equal(t, "Identifiants invalides", payload["message"])
}

func TestLoginUnknownUser(t *testing.T) {
	app := loginApp(map[string]string{"Ahmed": "Ahmed"})

	resp, payload := postLogin(t, app, `{"username":"Inconnu","password":"Inconnu"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, false, payload["success"])
}

func TestLoginMalformedBody(t *testing.T) {
	app := loginApp(map[string]string{"Ahmed": "Ahmed"})

	resp, payload := postLogin(t, app, `{"username":`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, false, payload["success"])
}

func TestNewAuthControllerUsesConfiguredUsers(t *testing.T) {
	ctl := NewAuthController()
	assert.NotEmpty(t, ctl.Users)
}
