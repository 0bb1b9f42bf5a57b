// file: internals/helpers/rowfield/rowfield.go

// Package rowfield résout les noms de colonnes des lignes de plan.
// Les lignes sont des objets libres : une même colonne peut apparaître
// sous des casses différentes d'une ligne à l'autre ("Matière",
// "matière", " MATIERE "). La résolution ignore la casse et les espaces
// de bord. En cas d'égalité, la clé la plus petite dans l'ordre
// lexicographique gagne (les maps Go n'ont pas d'ordre d'insertion).
package rowfield

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Row est une ligne de plan hebdomadaire telle que stockée en jsonb.
type Row = map[string]any

// FindKey renvoie la clé réelle de row correspondant à target.
func FindKey(row Row, target string) (string, bool) {
	want := strings.ToLower(strings.TrimSpace(target))
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if strings.ToLower(strings.TrimSpace(k)) == want {
			return k, true
		}
	}
	return "", false
}

// Value renvoie la valeur du champ target, ou def si le champ est
// absent, nil, ou une chaîne vide.
func Value(row Row, target string, def string) any {
	key, ok := FindKey(row, target)
	if !ok {
		return def
	}
	v := row[key]
	if v == nil {
		return def
	}
	if s, isStr := v.(string); isStr && s == "" {
		return def
	}
	return v
}

// StringValue est Value contraint en chaîne.
func StringValue(row Row, target string, def string) string {
	v := Value(row, target, def)
	if s, ok := v.(string); ok {
		return s
	}
	return Stringify(v)
}

// Stringify rend une valeur de cellule affichable ("" pour nil).
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		// les entiers JSON arrivent en float64
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}
