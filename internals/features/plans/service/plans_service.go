// file: internals/features/plans/service/plans_service.go
package service

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"planhebdo_backend/internals/features/plans/model"
	"planhebdo_backend/internals/helpers/rowfield"
)

type PlanService struct {
	DB *gorm.DB
}

func NewPlanService(db *gorm.DB) *PlanService {
	return &PlanService{DB: db}
}

// ReplacePlan remplace tout le tableau d'une semaine (créée au besoin).
// Les lignes entrantes sont nettoyées de leurs champs d'identité.
func (s *PlanService) ReplacePlan(ctx context.Context, week int, rows []rowfield.Row) error {
	plan := model.WeekPlanModel{WeekPlanWeek: week}
	if err := plan.SetRows(CleanRows(rows)); err != nil {
		return err
	}
	return s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "week_plan_week"}},
			DoUpdates: clause.Assignments(map[string]any{
				"week_plan_rows":       plan.WeekPlanRows,
				"week_plan_updated_at": time.Now().UTC(),
			}),
		}).
		Create(&plan).Error
}

// SaveClassNote pose la note d'une classe dans la semaine donnée,
// en créant l'enregistrement de semaine s'il n'existe pas encore
// (asymétrie voulue avec UpsertRow, qui ne crée jamais rien).
func (s *PlanService) SaveClassNote(ctx context.Context, week int, classe, notes string) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var plan model.WeekPlanModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("week_plan_week = ?", week).
			First(&plan).Error
		if err == gorm.ErrRecordNotFound {
			plan = model.WeekPlanModel{WeekPlanWeek: week}
			if err := plan.SetRows(nil); err != nil {
				return err
			}
			if err := plan.SetClassNotes(map[string]string{classe: notes}); err != nil {
				return err
			}
			return tx.Create(&plan).Error
		}
		if err != nil {
			return err
		}

		current, err := plan.ClassNotes()
		if err != nil {
			return err
		}
		current[classe] = notes
		if err := plan.SetClassNotes(current); err != nil {
			return err
		}
		return tx.Model(&plan).
			UpdateColumn("week_plan_class_notes", plan.WeekPlanClassNotes).Error
	})
}

// UpsertRow applique une mise à jour partielle sur la ligne de la
// semaine identifiée par la clé composite (voir row_upsert.go). La
// semaine est verrouillée le temps de la fusion : deux upserts
// concurrents sur la même semaine se sérialisent ici.
func (s *PlanService) UpsertRow(ctx context.Context, week int, partial rowfield.Row) (map[string]any, error) {
	filter, err := ResolveKeyFilter(partial)
	if err != nil {
		return nil, err
	}

	var marker map[string]any
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var plan model.WeekPlanModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("week_plan_week = ?", week).
			First(&plan).Error
		if err == gorm.ErrRecordNotFound {
			return ErrRowNotFound
		}
		if err != nil {
			return err
		}

		rows, err := plan.Rows()
		if err != nil {
			return err
		}
		marker, err = ApplyRowUpdate(rows, filter, partial, time.Now())
		if err != nil {
			return err
		}
		if err := plan.SetRows(rows); err != nil {
			return err
		}
		return tx.Model(&plan).
			UpdateColumn("week_plan_rows", plan.WeekPlanRows).Error
	})
	if err != nil {
		return nil, err
	}
	return marker, nil
}

// FetchPlan renvoie les lignes et notes d'une semaine, valeurs vides
// (jamais une erreur) si la semaine n'a encore rien.
func (s *PlanService) FetchPlan(ctx context.Context, week int) ([]rowfield.Row, map[string]string, error) {
	var plan model.WeekPlanModel
	err := s.DB.WithContext(ctx).
		Where("week_plan_week = ?", week).
		First(&plan).Error
	if err == gorm.ErrRecordNotFound {
		return []rowfield.Row{}, map[string]string{}, nil
	}
	if err != nil {
		return nil, nil, err
	}
	rows, err := plan.Rows()
	if err != nil {
		return nil, nil, err
	}
	notes, err := plan.ClassNotes()
	if err != nil {
		return nil, nil, err
	}
	return rows, notes, nil
}

// FetchAllPlans renvoie toutes les semaines stockées, numéro croissant.
func (s *PlanService) FetchAllPlans(ctx context.Context) ([]model.WeekPlanModel, error) {
	var plans []model.WeekPlanModel
	err := s.DB.WithContext(ctx).
		Order("week_plan_week ASC").
		Find(&plans).Error
	return plans, err
}

// DistinctClasses liste les classes distinctes non vides de toutes les
// semaines, triées.
func (s *PlanService) DistinctClasses(ctx context.Context) ([]string, error) {
	plans, err := s.FetchAllPlans(ctx)
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	for i := range plans {
		rows, err := plans[i].Rows()
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			if classe := rowfield.StringValue(row, "Classe", ""); classe != "" {
				seen[classe] = true
			}
		}
	}
	classes := make([]string, 0, len(seen))
	for c := range seen {
		classes = append(classes, c)
	}
	sort.Strings(classes)
	return classes, nil
}
