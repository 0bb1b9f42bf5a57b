// file: internals/features/plans/model/week_plan_model.go
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"planhebdo_backend/internals/helpers/rowfield"
)

// WeekPlanModel agrège tout le contenu d'une semaine : les lignes du
// tableau (jsonb, structure libre) et les notes par classe. Une seule
// ligne par numéro de semaine, jamais supprimée.
type WeekPlanModel struct {
	WeekPlanID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:week_plan_id" json:"week_plan_id"`
	WeekPlanWeek int       `gorm:"not null;uniqueIndex;column:week_plan_week" json:"week_plan_week"`

	WeekPlanRows       datatypes.JSON `gorm:"type:jsonb;not null;default:'[]';column:week_plan_rows" json:"week_plan_rows"`
	WeekPlanClassNotes datatypes.JSON `gorm:"type:jsonb;not null;default:'{}';column:week_plan_class_notes" json:"week_plan_class_notes"`

	WeekPlanCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:week_plan_created_at" json:"week_plan_created_at"`
	WeekPlanUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:week_plan_updated_at" json:"week_plan_updated_at"`
}

func (WeekPlanModel) TableName() string { return "week_plans" }

// Rows décode le tableau de lignes.
func (m *WeekPlanModel) Rows() ([]rowfield.Row, error) {
	if len(m.WeekPlanRows) == 0 {
		return []rowfield.Row{}, nil
	}
	var rows []rowfield.Row
	if err := json.Unmarshal(m.WeekPlanRows, &rows); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []rowfield.Row{}
	}
	return rows, nil
}

// ClassNotes décode la map classe → note.
func (m *WeekPlanModel) ClassNotes() (map[string]string, error) {
	if len(m.WeekPlanClassNotes) == 0 {
		return map[string]string{}, nil
	}
	var notes map[string]string
	if err := json.Unmarshal(m.WeekPlanClassNotes, &notes); err != nil {
		return nil, err
	}
	if notes == nil {
		notes = map[string]string{}
	}
	return notes, nil
}

func (m *WeekPlanModel) SetRows(rows []rowfield.Row) error {
	if rows == nil {
		rows = []rowfield.Row{}
	}
	raw, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	m.WeekPlanRows = raw
	return nil
}

func (m *WeekPlanModel) SetClassNotes(notes map[string]string) error {
	if notes == nil {
		notes = map[string]string{}
	}
	raw, err := json.Marshal(notes)
	if err != nil {
		return err
	}
	m.WeekPlanClassNotes = raw
	return nil
}
