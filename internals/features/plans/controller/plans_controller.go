// file: internals/features/plans/controller/plans_controller.go
package controller

import (
	"errors"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "planhebdo_backend/internals/features/plans/dto"
	service "planhebdo_backend/internals/features/plans/service"
	helper "planhebdo_backend/internals/helpers"
)

type PlanController struct {
	Service   *service.PlanService
	Validator *validator.Validate
}

func NewPlanController(db *gorm.DB, v *validator.Validate) *PlanController {
	if v == nil {
		v = validator.New()
	}
	return &PlanController{Service: service.NewPlanService(db), Validator: v}
}

// fieldMessage traduit la première erreur de validation en message
// d'erreur métier (les clients attendent les libellés historiques).
func fieldMessage(err error, messages map[string]string) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		if msg, ok := messages[ve[0].Field()]; ok {
			return msg
		}
	}
	return "Requête invalide."
}

// POST /save-plan — remplace tout le tableau d'une semaine.
func (ctl *PlanController) SavePlan(c *fiber.Ctx) error {
	var p dto.SavePlanRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Semaine invalide.")
	}
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest,
			fieldMessage(err, map[string]string{"Week": "Semaine invalide."}))
	}
	if p.Data == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, `"data" doit être un tableau.`)
	}

	log.Printf("[SAVE-PLAN] Sauvegarde S%d, Lignes: %d", p.Week, len(p.Data))
	if err := ctl.Service.ReplacePlan(c.UserContext(), p.Week, p.Data); err != nil {
		log.Printf("❌ Erreur DB /save-plan S%d: %v", p.Week, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erreur DB sauvegarde plan.")
	}
	return helper.JsonMessage(c, "Tableau S"+strconv.Itoa(p.Week)+" enregistré.")
}

// POST /save-notes — pose la note d'une classe (semaine créée au besoin).
func (ctl *PlanController) SaveNotes(c *fiber.Ctx) error {
	var p dto.SaveNotesRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Semaine invalide.")
	}
	p.Normalize()
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, fieldMessage(err, map[string]string{
			"Week":   "Semaine invalide.",
			"Classe": "Classe invalide.",
			"Notes":  "Notes invalides (doit être string).",
		}))
	}

	log.Printf("[SAVE-NOTES] S%d, Classe:%q, Longueur:%d", p.Week, p.Classe, len(*p.Notes))
	if err := ctl.Service.SaveClassNote(c.UserContext(), p.Week, p.Classe, *p.Notes); err != nil {
		log.Printf("❌ Erreur DB /save-notes S%d, C:%q: %v", p.Week, p.Classe, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erreur DB /save-notes.")
	}
	return helper.JsonMessage(c, "Note pour "+p.Classe+" (S"+strconv.Itoa(p.Week)+") enregistrée.")
}

// POST /save-row — upsert d'une ligne par clé composite. Ne crée jamais
// ni la semaine ni la ligne.
func (ctl *PlanController) SaveRow(c *fiber.Ctx) error {
	var p dto.SaveRowRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Semaine invalide.")
	}
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, fieldMessage(err, map[string]string{
			"Week": "Semaine invalide.",
			"Data": "Données ligne invalides.",
		}))
	}
	if len(p.Data) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Données ligne invalides.")
	}

	marker, err := ctl.Service.UpsertRow(c.UserContext(), p.Week, p.Data)
	if err != nil {
		var missing *service.MissingKeyFieldError
		switch {
		case errors.As(err, &missing):
			log.Printf("[SAVE-ROW] Clé '%s' manquante/vide S%d", missing.Field, p.Week)
			return helper.JsonError(c, fiber.StatusBadRequest, missing.Error())
		case errors.Is(err, service.ErrEmptyRowData):
			return helper.JsonError(c, fiber.StatusBadRequest, "Données ligne invalides.")
		case errors.Is(err, service.ErrRowNotFound):
			log.Printf("[SAVE-ROW] Ligne non trouvée S%d", p.Week)
			return helper.JsonError(c, fiber.StatusNotFound,
				"Ligne non trouvée pour la mise à jour. Les champs clés ont-ils été modifiés par erreur ailleurs ?")
		default:
			log.Printf("❌ Erreur DB /save-row S%d: %v", p.Week, err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Erreur DB /save-row.")
		}
	}

	log.Printf("[SAVE-ROW] Ligne enregistrée S%d", p.Week)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":     "Ligne enregistrée.",
		"updatedData": marker,
	})
}

// GET /plans/:week — lignes + notes, valeurs vides si semaine absente.
func (ctl *PlanController) GetPlan(c *fiber.Ctx) error {
	week, err := strconv.Atoi(c.Params("week"))
	if err != nil || week < 1 || week > 53 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Semaine invalide.")
	}

	rows, notes, err := ctl.Service.FetchPlan(c.UserContext(), week)
	if err != nil {
		log.Printf("❌ Erreur DB /plans/%d: %v", week, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erreur DB récupération plan.")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"planData":   rows,
		"classNotes": notes,
	})
}

// GET /api/all-classes — classes distinctes de toutes les semaines.
func (ctl *PlanController) AllClasses(c *fiber.Ctx) error {
	classes, err := ctl.Service.DistinctClasses(c.UserContext())
	if err != nil {
		log.Printf("❌ Erreur serveur /api/all-classes: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError,
			"Erreur interne lors de la récupération des classes.")
	}
	log.Printf("[ALL-CLASSES] %d classes uniques trouvées.", len(classes))
	return c.Status(fiber.StatusOK).JSON(classes)
}
