// file: internals/features/ai/service/sections.go
package service

import "strings"

// MissingSectionText remplace toute section que le modèle n'a pas rendue.
const MissingSectionText = "(Non généré)"

// Sections attendues dans la réponse du modèle, dans l'ordre du prompt.
var Sections = []string{
	"METHODES", "OUTILS", "OBJECTIFS", "MINUTAGE", "CONTENU",
	"RESSOURCES", "DEVOIRS", "DIFF_LENTS", "DIFF_PERFORMANTS", "DIFF_TOUS",
}

// ParseSections découpe la réponse du modèle sur les marqueurs
// "### NOM:" (détectés en début de ligne, espaces de bord ignorés). Le
// contenu d'une section court jusqu'au marqueur suivant. Chaque section
// absente ou vide vaut MissingSectionText : le rendu Word ne laisse
// jamais un trou.
func ParseSections(text string) map[string]string {
	parsed := make(map[string]string, len(Sections))

	var current string
	var content []string
	flush := func() {
		if current != "" {
			parsed[current] = strings.TrimSpace(strings.Join(content, "\n"))
		}
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		header := false
		for _, section := range Sections {
			marker := "### " + section + ":"
			if strings.HasPrefix(trimmed, marker) {
				flush()
				current = section
				content = []string{strings.TrimSpace(trimmed[len(marker):])}
				header = true
				break
			}
		}
		if !header && current != "" {
			content = append(content, line)
		}
	}
	flush()

	for _, section := range Sections {
		if parsed[section] == "" {
			parsed[section] = MissingSectionText
		}
	}
	return parsed
}
