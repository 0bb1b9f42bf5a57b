// file: internals/features/exports/service/report.go
package service

import (
	"errors"
	"regexp"
	"sort"

	"planhebdo_backend/internals/features/plans/model"
	"planhebdo_backend/internals/helpers/calendar"
	"planhebdo_backend/internals/helpers/rowfield"
)

var (
	ErrNoPlans       = errors.New("aucun plan en base")
	ErrClassNotFound = errors.New("aucune ligne pour la classe demandée")
)

// ReportRow est une ligne du rapport annuel d'une matière.
type ReportRow struct {
	Mois            string
	Semaine         int
	Periode         string
	Lecon           string
	TravauxDeClasse string
	Support         string
	Devoirs         string
}

var sheetNameRe = regexp.MustCompile(`[*?:/\\\[\]]`)

// SafeSheetName tronque à 30 caractères et neutralise les caractères
// interdits par Excel dans les noms d'onglets.
func SafeSheetName(subject string) string {
	runes := []rune(subject)
	if len(runes) > 30 {
		runes = runes[:30]
	}
	return sheetNameRe.ReplaceAllString(string(runes), "_")
}

// BuildClassReport balaie toutes les semaines et regroupe, matière par
// matière, les lignes dont la classe correspond exactement à la classe
// demandée. Le mois vient de la date de début de semaine ("N/A" quand la
// semaine n'a pas de dates configurées).
func BuildClassReport(cal *calendar.Calendar, classe string, plans []model.WeekPlanModel) (map[string][]ReportRow, error) {
	if len(plans) == 0 {
		return nil, ErrNoPlans
	}

	bySubject := make(map[string][]ReportRow)
	for _, plan := range plans {
		rows, err := plan.Rows()
		if err != nil || len(rows) == 0 {
			continue
		}
		// seule la date de début compte : une date de fin invalide ne
		// prive pas la semaine de son mois
		month := "N/A"
		if start, err := cal.WeekStart(plan.WeekPlanWeek); err == nil {
			month = calendar.MonthName(start)
		}
		for _, row := range rows {
			classKey := headerKey(row, "Classe")
			if v, ok := row[classKey].(string); !ok || v != classe {
				continue
			}
			subject := rowfield.StringValue(row, "Matière", "")
			if subject == "" {
				continue
			}
			bySubject[subject] = append(bySubject[subject], ReportRow{
				Mois:            month,
				Semaine:         plan.WeekPlanWeek,
				Periode:         rowfield.StringValue(row, "Période", ""),
				Lecon:           rowfield.StringValue(row, "Leçon", ""),
				TravauxDeClasse: rowfield.StringValue(row, "Travaux de classe", ""),
				Support:         rowfield.StringValue(row, "Support", ""),
				Devoirs:         rowfield.StringValue(row, "Devoirs", ""),
			})
		}
	}

	if len(bySubject) == 0 {
		return nil, ErrClassNotFound
	}
	return bySubject, nil
}

// SortedSubjects renvoie les matières du rapport en ordre alphabétique,
// qui est aussi l'ordre des onglets du classeur.
func SortedSubjects(bySubject map[string][]ReportRow) []string {
	subjects := make([]string, 0, len(bySubject))
	for s := range bySubject {
		subjects = append(subjects, s)
	}
	sort.Strings(subjects)
	return subjects
}
