// file: internals/features/plans/service/row_upsert.go
package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"planhebdo_backend/internals/helpers/rowfield"
)

// ErrRowNotFound : aucune ligne de la semaine ne porte la clé composite
// demandée (couvre aussi la semaine absente — cette voie ne crée rien).
var ErrRowNotFound = errors.New("ligne non trouvée pour la mise à jour")

// ErrEmptyRowData : la ligne partielle reçue est vide ou absente.
var ErrEmptyRowData = errors.New("données ligne invalides")

// MissingKeyFieldError nomme le premier champ clé manquant ou vide,
// dans l'ordre déclaré de la clé composite.
type MissingKeyFieldError struct {
	Field string
}

func (e *MissingKeyFieldError) Error() string {
	return fmt.Sprintf("Champ clé '%s' manquant/vide.", e.Field)
}

// keyFields : la clé composite identifiant une ligne dans sa semaine.
// L'ordre est contractuel pour le message d'erreur.
var keyFields = [...]string{"Enseignant", "Classe", "Jour", "Période", "Matière"}

// contentFields : champs librement écrasés par un upsert de ligne.
var contentFields = [...]string{"Leçon", "Travaux de classe", "Support", "Devoirs"}

// ResolveKeyFilter construit le filtre d'égalité de la clé composite à
// partir de la ligne partielle : chaque champ clé doit se résoudre vers
// une valeur présente et non vide. Le filtre est indexé par les noms de
// champs réellement portés par la ligne (égalité exacte au matching,
// pas insensible à la casse).
func ResolveKeyFilter(partial rowfield.Row) (map[string]any, error) {
	if len(partial) == 0 {
		return nil, ErrEmptyRowData
	}
	filter := make(map[string]any, len(keyFields))
	for _, name := range keyFields {
		key, ok := rowfield.FindKey(partial, name)
		if !ok {
			return nil, &MissingKeyFieldError{Field: name}
		}
		v := partial[key]
		if v == nil || strings.TrimSpace(rowfield.Stringify(v)) == "" {
			return nil, &MissingKeyFieldError{Field: name}
		}
		filter[key] = v
	}
	return filter, nil
}

// ApplyRowUpdate fusionne la ligne partielle dans la première ligne de
// rows satisfaisant le filtre. Seule cette ligne est touchée. Renvoie le
// marqueur {cléUpdatedAt: horodatage} à retourner à l'appelant.
func ApplyRowUpdate(rows []rowfield.Row, filter map[string]any, partial rowfield.Row, now time.Time) (map[string]any, error) {
	idx := -1
	for i, row := range rows {
		if rowMatches(row, filter) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrRowNotFound
	}

	target := rows[idx]
	for _, name := range contentFields {
		if key, ok := rowfield.FindKey(partial, name); ok {
			// la graphie de l'appelant est conservée, même si la ligne
			// stockée épelle le champ autrement
			target[key] = partial[key]
		}
	}

	updatedAtKey := "updatedAt"
	if key, ok := rowfield.FindKey(partial, "updatedAt"); ok {
		updatedAtKey = key
	}
	stamp := now.UTC().Format(time.RFC3339)
	target[updatedAtKey] = stamp

	return map[string]any{updatedAtKey: stamp}, nil
}

func rowMatches(row rowfield.Row, filter map[string]any) bool {
	for key, want := range filter {
		got, ok := row[key]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}
