// file: internals/features/exports/service/excel_test.go
package service

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"planhebdo_backend/internals/helpers/rowfield"
)

func TestRenderWeekWorkbook(t *testing.T) {
	rows := []rowfield.Row{
		{
			"Enseignant": "Ahmed", "Jour": "Lundi", "Période": "1", "Classe": "6A",
			"Matière": "Maths", "Leçon": "Fractions", "Travaux de classe": "Exercices",
			"Support": "Manuel", "Devoirs": "Ex. 1 à 4",
		},
		{"Enseignant": "Sara", "Jour": "Mardi", "Période": float64(2), "Classe": "6B", "Matière": "Arabe"},
	}

	body, err := RenderWeekWorkbook(3, rows)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Plan S3"}, f.GetSheetList())

	got, err := f.GetRows("Plan S3")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, weekHeaders, got[0])
	assert.Equal(t, []string{
		"Ahmed", "Lundi", "1", "6A", "Maths", "Fractions", "Exercices", "Manuel", "Ex. 1 à 4",
	}, got[1])
	// la période numérique est rendue en texte, les champs absents vides
	assert.Equal(t, "2", got[2][2])
	assert.Equal(t, "Arabe", got[2][4])

	width, err := f.GetColWidth("Plan S3", "F")
	require.NoError(t, err)
	assert.InDelta(t, 45, width, 1)
}

func TestRenderClassReport(t *testing.T) {
	bySubject := map[string][]ReportRow{
		"Maths": {
			{Mois: "Août", Semaine: 1, Periode: "1", Lecon: "Fractions"},
			{Mois: "Septembre", Semaine: 2, Periode: "3", Lecon: "Décimaux", Devoirs: "Ex. 2"},
		},
		"Histoire/Géo": {
			{Mois: "Août", Semaine: 1, Periode: "2", Lecon: "Préhistoire"},
		},
	}

	body, err := RenderClassReport(bySubject)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer f.Close()

	// un onglet par matière, ordre alphabétique, noms assainis
	assert.Equal(t, []string{"Histoire_Géo", "Maths"}, f.GetSheetList())

	got, err := f.GetRows("Maths")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, reportHeaders, got[0])
	assert.Equal(t, []string{"Août", "1", "1", "Fractions"}, got[1][:4])
	assert.Equal(t, "Ex. 2", got[2][6])
}
