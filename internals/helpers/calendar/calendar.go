// file: internals/helpers/calendar/calendar.go
package calendar

import (
	"errors"
	"fmt"
	"time"

	"planhebdo_backend/internals/configs"
)

// ErrWeekDatesMissing : la semaine demandée n'a pas de dates configurées
// (hors table, ou date stockée illisible).
var ErrWeekDatesMissing = errors.New("dates serveur manquantes pour cette semaine")

// InvalidDateLabel est la sentinelle renvoyée pour une date nulle.
const InvalidDateLabel = "Date invalide"

var joursFrancais = [...]string{"Dimanche", "Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi", "Samedi"}

var moisFrancais = [...]string{
	"Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
	"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre",
}

// dayOffsets : seuls les jours de classe ont une position dans la semaine.
var dayOffsets = map[string]int{
	"Dimanche": 0,
	"Lundi":    1,
	"Mardi":    2,
	"Mercredi": 3,
	"Jeudi":    4,
}

// Calendar résout les numéros de semaine vers des dates concrètes à
// partir de la table figée de l'année scolaire. Toutes les dates sont
// manipulées à minuit UTC pour éviter les dérives de fuseau.
type Calendar struct {
	ranges map[int]configs.WeekDateRange
}

func New(ranges map[int]configs.WeekDateRange) *Calendar {
	return &Calendar{ranges: ranges}
}

// WeekStart renvoie le premier jour (dimanche) de la semaine donnée.
// Seule la borne de début est exigée : une borne de fin illisible ne
// condamne que l'affichage de la plage, pas la semaine entière.
func (cal *Calendar) WeekStart(week int) (time.Time, error) {
	r, ok := cal.ranges[week]
	if !ok {
		return time.Time{}, ErrWeekDatesMissing
	}
	start, err := parseISODate(r.Start)
	if err != nil {
		return time.Time{}, ErrWeekDatesMissing
	}
	return start, nil
}

// WeekRange renvoie les bornes configurées de la semaine donnée.
func (cal *Calendar) WeekRange(week int) (time.Time, time.Time, error) {
	r, ok := cal.ranges[week]
	if !ok {
		return time.Time{}, time.Time{}, ErrWeekDatesMissing
	}
	start, err := parseISODate(r.Start)
	if err != nil {
		return time.Time{}, time.Time{}, ErrWeekDatesMissing
	}
	end, err := parseISODate(r.End)
	if err != nil {
		return time.Time{}, time.Time{}, ErrWeekDatesMissing
	}
	return start, end, nil
}

func parseISODate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.UTC)
}

// DateForWeekday projette un nom de jour (Dimanche..Jeudi) sur la date
// concrète de la semaine commençant à weekStart. false pour un jour
// inconnu ou un début de semaine nul.
func DateForWeekday(weekStart time.Time, jour string) (time.Time, bool) {
	if weekStart.IsZero() {
		return time.Time{}, false
	}
	offset, ok := dayOffsets[jour]
	if !ok {
		return time.Time{}, false
	}
	return weekStart.AddDate(0, 0, offset), true
}

// FormatLongDate rend une date au format long français,
// ex. "Jeudi 05 Septembre 2024". Ne panique jamais.
func FormatLongDate(t time.Time) string {
	if t.IsZero() {
		return InvalidDateLabel
	}
	return fmt.Sprintf("%s %02d %s %d",
		joursFrancais[int(t.Weekday())],
		t.Day(),
		moisFrancais[int(t.Month())-1],
		t.Year(),
	)
}

// MonthName renvoie le nom français du mois de la date donnée.
func MonthName(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return moisFrancais[int(t.Month())-1]
}
