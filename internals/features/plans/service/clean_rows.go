// file: internals/features/plans/service/clean_rows.go
package service

import (
	"time"

	"planhebdo_backend/internals/helpers/rowfield"
)

// CleanRows prépare les lignes entrantes d'un remplacement de semaine :
// les champs d'identité du client sont retirés, un updatedAt illisible
// est abandonné, et tout élément qui n'est pas un objet a déjà été
// écarté par le décodage JSON en amont.
func CleanRows(rows []rowfield.Row) []rowfield.Row {
	cleaned := make([]rowfield.Row, 0, len(rows))
	for _, row := range rows {
		if row == nil {
			continue
		}
		out := make(rowfield.Row, len(row))
		for k, v := range row {
			out[k] = v
		}
		delete(out, "_id")
		delete(out, "id")
		if v, ok := out["updatedAt"]; ok && !validTimestamp(v) {
			delete(out, "updatedAt")
		}
		cleaned = append(cleaned, out)
	}
	return cleaned
}

func validTimestamp(v any) bool {
	switch t := v.(type) {
	case nil:
		// une valeur absente ou nulle n'est pas "illisible", elle reste
		return true
	case string:
		if t == "" {
			return true
		}
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
			if _, err := time.Parse(layout, t); err == nil {
				return true
			}
		}
		return false
	case float64, bool:
		// horodatage epoch en millisecondes, ou coercible
		return true
	default:
		return false
	}
}
