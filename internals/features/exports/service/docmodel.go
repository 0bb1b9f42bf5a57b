// file: internals/features/exports/service/docmodel.go
package service

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"planhebdo_backend/internals/helpers/calendar"
	"planhebdo_backend/internals/helpers/rowfield"
)

// SubjectEntry est une séance d'une journée du plan Word.
type SubjectEntry struct {
	Matiere         string
	Lecon           string
	TravailDeClasse string
	Support         string
	Devoirs         string
}

// DayDocument regroupe les séances d'un jour de la semaine.
type DayDocument struct {
	Jour             string
	JourDateComplete string
	Matieres         []SubjectEntry
}

// WeekDocument est le modèle complet injecté dans le modèle Word.
type WeekDocument struct {
	Semaine      int
	Classe       string
	Jours        []DayDocument
	Notes        string
	PlageSemaine string
}

// Jours scolaires, dans l'ordre d'affichage du document.
var schoolDays = []string{"Dimanche", "Lundi", "Mardi", "Mercredi", "Jeudi"}

var captionDayRe = regexp.MustCompile(` (\d{2}) `)

// BuildWeekDocument transforme les lignes brutes d'une semaine en document
// prêt pour le rendu Word. Les clés des colonnes sont résolues une seule
// fois sur la première ligne, les jours hors Dimanche–Jeudi sont écartés.
func BuildWeekDocument(cal *calendar.Calendar, week int, classe, notes string, rows []rowfield.Row) (*WeekDocument, error) {
	start, err := cal.WeekStart(week)
	if err != nil {
		return nil, err
	}

	var sample rowfield.Row
	if len(rows) > 0 {
		sample = rows[0]
	}
	jourKey := headerKey(sample, "Jour")
	periodeKey := headerKey(sample, "Période")
	matiereKey := headerKey(sample, "Matière")
	leconKey := headerKey(sample, "Leçon")
	travauxKey := headerKey(sample, "Travaux de classe")
	supportKey := headerKey(sample, "Support")
	devoirsKey := headerKey(sample, "Devoirs")

	doc := &WeekDocument{
		Semaine:      week,
		Classe:       classe,
		Notes:        notes,
		PlageSemaine: weekCaption(cal, week),
	}

	for _, day := range schoolDays {
		var dayRows []rowfield.Row
		for _, row := range rows {
			if v, ok := row[jourKey].(string); ok && v == day {
				dayRows = append(dayRows, row)
			}
		}
		// un jour sans séance n'apparaît pas dans le document
		if len(dayRows) == 0 {
			continue
		}
		sort.SliceStable(dayRows, func(i, j int) bool {
			return comparePeriods(dayRows[i][periodeKey], dayRows[j][periodeKey]) < 0
		})

		// accès direct par la clé résolue, comme le regroupement : une
		// ligne qui épelle une colonne autrement que la première rend vide
		entries := make([]SubjectEntry, 0, len(dayRows))
		for _, row := range dayRows {
			entries = append(entries, SubjectEntry{
				Matiere:         rowfield.Stringify(row[matiereKey]),
				Lecon:           rowfield.Stringify(row[leconKey]),
				TravailDeClasse: rowfield.Stringify(row[travauxKey]),
				Support:         rowfield.Stringify(row[supportKey]),
				Devoirs:         rowfield.Stringify(row[devoirsKey]),
			})
		}

		label := day
		if date, ok := calendar.DateForWeekday(start, day); ok {
			label = calendar.FormatLongDate(date)
		}
		doc.Jours = append(doc.Jours, DayDocument{
			Jour:             day,
			JourDateComplete: label,
			Matieres:         entries,
		})
	}

	return doc, nil
}

// TemplateData aplatit le document en données de rendu pour docxtpl.
func (d *WeekDocument) TemplateData() map[string]any {
	jours := make([]map[string]any, 0, len(d.Jours))
	for _, day := range d.Jours {
		matieres := make([]map[string]any, 0, len(day.Matieres))
		for _, m := range day.Matieres {
			matieres = append(matieres, map[string]any{
				"matiere":         m.Matiere,
				"Lecon":           m.Lecon,
				"travailDeClasse": m.TravailDeClasse,
				"Support":         m.Support,
				"devoirs":         m.Devoirs,
			})
		}
		jours = append(jours, map[string]any{
			"jourDateComplete": day.JourDateComplete,
			"matieres":         matieres,
		})
	}
	return map[string]any{
		"semaine":      d.Semaine,
		"classe":       d.Classe,
		"jours":        jours,
		"notes":        d.Notes,
		"plageSemaine": d.PlageSemaine,
	}
}

// headerKey résout la clé réelle d'une colonne sur la ligne échantillon,
// avec repli sur le nom cible lui-même.
func headerKey(sample rowfield.Row, target string) string {
	if k, ok := rowfield.FindKey(sample, target); ok {
		return k
	}
	return target
}

// comparePeriods trie numériquement quand les deux périodes sont des
// entiers propres, sinon lexicographiquement sur la valeur brute.
func comparePeriods(a, b any) int {
	aRaw := rowfield.Stringify(a)
	bRaw := rowfield.Stringify(b)
	aN, aErr := strconv.Atoi(strings.TrimSpace(aRaw))
	bN, bErr := strconv.Atoi(strings.TrimSpace(bRaw))
	if aErr == nil && bErr == nil {
		return aN - bN
	}
	return strings.Compare(aRaw, bRaw)
}

// weekCaption rend la plage "du Dimanche le 25 Août 2024 à Jeudi 29 Août
// 2024", ou "Semaine N" quand les bornes sont illisibles.
func weekCaption(cal *calendar.Calendar, week int) string {
	start, end, err := cal.WeekRange(week)
	if err != nil {
		return fmt.Sprintf("Semaine %d", week)
	}
	startS := calendar.FormatLongDate(start)
	startS = replaceFirst(startS, ` le $1 `)
	endS := calendar.FormatLongDate(end)
	return fmt.Sprintf("du %s à %s", startS, endS)
}

func replaceFirst(s, repl string) string {
	loc := captionDayRe.FindStringSubmatchIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + string(captionDayRe.ExpandString(nil, repl, s, loc)) + s[loc[1]:]
}
