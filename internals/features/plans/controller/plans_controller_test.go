// file: internals/features/plans/controller/plans_controller_test.go
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

// les chemins de validation répondent avant tout accès DB : un
// contrôleur sans connexion suffit ici
func plansApp() *fiber.App {
	app := fiber.New()
	ctl := NewPlanController(nil, nil)
	app.Post("/save-plan", ctl.SavePlan)
	app.Post("/save-notes", ctl.SaveNotes)
	app.Post("/save-row", ctl.SaveRow)
	app.Get("/plans/:week", ctl.GetPlan)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, map[string]any) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return resp, payload
}

func TestSavePlanInvalidWeek(t *testing.T) {
	app := plansApp()
	for _, body := range []string{
		`{"week":0,"data":[]}`,
		`{"week":54,"data":[]}`,
		`{"data":[]}`,
	} {
		resp, payload := doJSON(t, app, http.MethodPost, "/save-plan", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
		assert.Equal(t, "Semaine invalide.", payload["message"], body)
	}
}

func TestSavePlanDataNotArray(t *testing.T) {
	resp, payload := doJSON(t, plansApp(), http.MethodPost, "/save-plan", `{"week":3}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, `"data" doit être un tableau.`, payload["message"])
}

func TestSaveNotesValidation(t *testing.T) {
	app := plansApp()

	resp, payload := doJSON(t, app, http.MethodPost, "/save-notes",
		`{"week":1,"notes":"x"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Classe invalide.", payload["message"])

	resp, payload = doJSON(t, app, http.MethodPost, "/save-notes",
		`{"week":1,"classe":"6A"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Notes invalides (doit être string).", payload["message"])
}

func TestSaveRowValidation(t *testing.T) {
	app := plansApp()

	resp, payload := doJSON(t, app, http.MethodPost, "/save-row", `{"week":1}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Données ligne invalides.", payload["message"])

	resp, payload = doJSON(t, app, http.MethodPost, "/save-row", `{"week":1,"data":{}}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Données ligne invalides.", payload["message"])
}

func TestGetPlanInvalidWeek(t *testing.T) {
	app := plansApp()
	for _, path := range []string{"/plans/0", "/plans/54", "/plans/abc"} {
		resp, payload := doJSON(t, app, http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
		assert.Equal(t, "Semaine invalide.", payload["message"], path)
	}
}
