// file: internals/features/exports/controller/exports_controller_test.go
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

	"planhebdo_backend/internals/configs"
	"planhebdo_backend/internals/helpers/calendar"
)

func exportsApp() *fiber.App {
	app := fiber.New()
	ctl := NewExportController(nil, calendar.New(configs.WeekDateRanges), nil)
	app.Post("/generate-word", ctl.GenerateWord)
	app.Post("/generate-excel-workbook", ctl.GenerateWorkbook)
	app.Post("/api/full-report-by-class", ctl.FullReport)
	return app
}

func post(t *testing.T, app *fiber.App, path, body string) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return resp, payload
}

func TestGenerateWordValidation(t *testing.T) {
	app := exportsApp()
	cases := []struct {
		body string
		want string
	}{
		{`{"classe":"6A","data":[]}`, "Semaine invalide."},
		{`{"week":99,"classe":"6A","data":[]}`, "Semaine invalide."},
		{`{"week":1,"data":[]}`, "Classe invalide."},
		{`{"week":1,"classe":"6A"}`, `"data" doit être array.`},
	}
	for _, tc := range cases {
		resp, payload := post(t, app, "/generate-word", tc.body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, tc.body)
		assert.Equal(t, tc.want, payload["message"], tc.body)
	}
}

func TestGenerateWordMissingWeekDates(t *testing.T) {
	resp, payload := post(t, exportsApp(), "/generate-word",
		`{"week":50,"classe":"6A","data":[]}`)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Config Erreur: Dates serveur manquantes pour S50.", payload["message"])
}

func TestGenerateWorkbookValidation(t *testing.T) {
	resp, payload := post(t, exportsApp(), "/generate-excel-workbook", `{"week":0}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Semaine invalide.", payload["message"])
}

func TestFullReportValidation(t *testing.T) {
	for _, body := range []string{`{}`, `{"classe":""}`} {
		resp, payload := post(t, exportsApp(), "/api/full-report-by-class", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
		assert.Equal(t, "Le nom de la classe est requis.", payload["message"], body)
	}
}
