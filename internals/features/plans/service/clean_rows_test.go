// file: internals/features/plans/service/clean_rows_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"planhebdo_backend/internals/helpers/rowfield"
)

func TestCleanRowsStripsIdentityFields(t *testing.T) {
	rows := []rowfield.Row{
		{"_id": "abc", "id": float64(12), "Classe": "6A", "Leçon": "Fractions"},
	}
	cleaned := CleanRows(rows)

	assert.Len(t, cleaned, 1)
	assert.NotContains(t, cleaned[0], "_id")
	assert.NotContains(t, cleaned[0], "id")
	assert.Equal(t, "6A", cleaned[0]["Classe"])

	// l'entrée d'origine n'est pas modifiée
	assert.Contains(t, rows[0], "_id")
}

func TestCleanRowsUpdatedAt(t *testing.T) {
	cases := []struct {
		name  string
		value any
		kept  bool
	}{
		{"rfc3339", "2024-09-02T10:30:00Z", true},
		{"date simple", "2024-09-02", true},
		{"epoch ms", float64(1725267000000), true},
		{"chaîne vide", "", true},
		{"nil", nil, true},
		{"illisible", "pas une date", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cleaned := CleanRows([]rowfield.Row{{"Classe": "6A", "updatedAt": tc.value}})
			if tc.kept {
				assert.Contains(t, cleaned[0], "updatedAt")
			} else {
				assert.NotContains(t, cleaned[0], "updatedAt")
			}
		})
	}
}

func TestCleanRowsSkipsNil(t *testing.T) {
	cleaned := CleanRows([]rowfield.Row{nil, {"Classe": "6A"}})
	assert.Len(t, cleaned, 1)
}

func TestCleanRowsEmpty(t *testing.T) {
	assert.Empty(t, CleanRows(nil))
	assert.Empty(t, CleanRows([]rowfield.Row{}))
}
