// file: internals/features/exports/controller/exports_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"planhebdo_backend/internals/configs"
	dto "planhebdo_backend/internals/features/exports/dto"
	service "planhebdo_backend/internals/features/exports/service"
	plansService "planhebdo_backend/internals/features/plans/service"
	helper "planhebdo_backend/internals/helpers"
	"planhebdo_backend/internals/helpers/calendar"
	"planhebdo_backend/internals/helpers/docxtpl"
)

type ExportController struct {
	Plans     *plansService.PlanService
	Cal       *calendar.Calendar
	Validator *validator.Validate
}

func NewExportController(db *gorm.DB, cal *calendar.Calendar, v *validator.Validate) *ExportController {
	if v == nil {
		v = validator.New()
	}
	return &ExportController{
		Plans:     plansService.NewPlanService(db),
		Cal:       cal,
		Validator: v,
	}
}

func fieldMessage(err error, messages map[string]string) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		if msg, ok := messages[ve[0].Field()]; ok {
			return msg
		}
	}
	return "Requête invalide."
}

// POST /generate-word — rend le plan hebdomadaire d'une classe au format
// Word. Les données viennent du corps de requête, pas de la base : le
// client envoie la grille telle qu'il l'affiche.
func (ctl *ExportController) GenerateWord(c *fiber.Ctx) error {
	var p dto.GenerateWordRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Semaine invalide.")
	}
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, fieldMessage(err, map[string]string{
			"Week":   "Semaine invalide.",
			"Classe": "Classe invalide.",
		}))
	}
	if p.Data == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, `"data" doit être array.`)
	}

	log.Printf("[GEN-WORD] S%d, Classe:%q, Lignes:%d", p.Week, p.Classe, len(p.Data))
	doc, err := service.BuildWeekDocument(ctl.Cal, p.Week, p.Classe, p.Notes, p.Data)
	if err != nil {
		if errors.Is(err, calendar.ErrWeekDatesMissing) {
			log.Printf("❌ Dates manquantes pour S%d dans la configuration serveur.", p.Week)
			return helper.JsonError(c, fiber.StatusInternalServerError,
				fmt.Sprintf("Config Erreur: Dates serveur manquantes pour S%d.", p.Week))
		}
		log.Printf("❌ Erreur construction document S%d: %v", p.Week, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erreur interne /generate-word.")
	}

	tpl, err := docxtpl.Fetch(c.UserContext(), configs.WordTemplateURL)
	if err != nil {
		log.Printf("❌ Erreur récupération modèle Word: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erreur récup modèle Word.")
	}
	body, err := docxtpl.Render(tpl, doc.TemplateData())
	if err != nil {
		log.Printf("❌ Erreur rendu Word S%d: %v", p.Week, err)
		return helper.JsonError(c, fiber.StatusInternalServerError,
			fmt.Sprintf("Erreur rendu: %v", err))
	}

	filename := fmt.Sprintf("Plan_hebdomadaire_S%d_%s.docx", p.Week, helper.CompactFileToken(p.Classe))
	log.Printf("[GEN-WORD] Document %s généré.", filename)
	return helper.SendDocument(c, filename, helper.MIMEWordDocument, body)
}

// POST /generate-excel-workbook — classeur Excel de toutes les lignes
// d'une semaine, toutes classes confondues.
func (ctl *ExportController) GenerateWorkbook(c *fiber.Ctx) error {
	var p dto.GenerateWorkbookRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Semaine invalide.")
	}
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Semaine invalide.")
	}

	rows, _, err := ctl.Plans.FetchPlan(c.UserContext(), p.Week)
	if err != nil {
		log.Printf("❌ Erreur DB /generate-excel-workbook S%d: %v", p.Week, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erreur DB récupération des données.")
	}
	if len(rows) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound,
			fmt.Sprintf("Aucune donnée trouvée pour la semaine %d.", p.Week))
	}

	body, err := service.RenderWeekWorkbook(p.Week, rows)
	if err != nil {
		log.Printf("❌ Erreur rendu Excel S%d: %v", p.Week, err)
		return helper.JsonError(c, fiber.StatusInternalServerError,
			"Erreur interne lors de la génération du fichier Excel.")
	}

	filename := fmt.Sprintf("Plan_Hebdomadaire_S%d_Complet.xlsx", p.Week)
	log.Printf("[GEN-EXCEL-SINGLE] %s généré (%d lignes).", filename, len(rows))
	return helper.SendDocument(c, filename, helper.MIMEExcelWorkbook, body)
}

// POST /api/full-report-by-class — rapport annuel d'une classe, un
// onglet Excel par matière.
func (ctl *ExportController) FullReport(c *fiber.Ctx) error {
	var p dto.FullReportRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Le nom de la classe est requis.")
	}
	// pas de trim : la classe est comparée telle quelle aux lignes
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Le nom de la classe est requis.")
	}

	log.Printf("[FULL-REPORT] Génération du rapport pour la classe %q", p.Classe)
	plans, err := ctl.Plans.FetchAllPlans(c.UserContext())
	if err != nil {
		log.Printf("❌ Erreur DB /full-report-by-class %q: %v", p.Classe, err)
		return helper.JsonError(c, fiber.StatusInternalServerError,
			"Erreur interne lors de la génération du rapport complet.")
	}

	bySubject, err := service.BuildClassReport(ctl.Cal, p.Classe, plans)
	switch {
	case errors.Is(err, service.ErrNoPlans):
		return helper.JsonError(c, fiber.StatusNotFound, "Aucune donnée trouvée dans la base de données.")
	case errors.Is(err, service.ErrClassNotFound):
		return helper.JsonError(c, fiber.StatusNotFound,
			fmt.Sprintf("Aucune donnée trouvée pour la classe '%s'.", p.Classe))
	case err != nil:
		log.Printf("❌ Erreur construction rapport %q: %v", p.Classe, err)
		return helper.JsonError(c, fiber.StatusInternalServerError,
			"Erreur interne lors de la génération du rapport complet.")
	}

	body, err := service.RenderClassReport(bySubject)
	if err != nil {
		log.Printf("❌ Erreur rendu rapport %q: %v", p.Classe, err)
		return helper.JsonError(c, fiber.StatusInternalServerError,
			"Erreur interne lors de la génération du rapport complet.")
	}

	filename := "Rapport_Complet_" + helper.SafeFileToken(p.Classe) + ".xlsx"
	log.Printf("[FULL-REPORT] %s généré (%d matières).", filename, len(bySubject))
	return helper.SendDocument(c, filename, helper.MIMEExcelWorkbook, body)
}
