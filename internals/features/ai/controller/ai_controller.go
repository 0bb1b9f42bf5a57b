// file: internals/features/ai/controller/ai_controller.go
package controller

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"planhebdo_backend/internals/configs"
	dto "planhebdo_backend/internals/features/ai/dto"
	service "planhebdo_backend/internals/features/ai/service"
	helper "planhebdo_backend/internals/helpers"
	"planhebdo_backend/internals/helpers/calendar"
	"planhebdo_backend/internals/helpers/docxtpl"
	"planhebdo_backend/internals/helpers/rowfield"
)

// LessonGenerator rédige le texte brut des sections pédagogiques à
// partir d'un prompt. Implémenté par service.Generator.
type LessonGenerator interface {
	GenerateLessonText(ctx context.Context, prompt string) (string, error)
}

type AIController struct {
	Generator LessonGenerator
	Cal       *calendar.Calendar
	Validator *validator.Validate
}

// NewAIController accepte un Generator nil : le endpoint répond alors 503
// au lieu de planter, la clé API est facultative au démarrage.
func NewAIController(gen LessonGenerator, cal *calendar.Calendar, v *validator.Validate) *AIController {
	if v == nil {
		v = validator.New()
	}
	return &AIController{Generator: gen, Cal: cal, Validator: v}
}

// POST /generate-ai-lesson-plan — génère un plan de leçon Word dont les
// sections pédagogiques sont rédigées par Gemini.
func (ctl *AIController) GenerateLessonPlan(c *fiber.Ctx) error {
	if ctl.Generator == nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable,
			"Service IA (Gemini) non configuré ou clé API manquante sur le serveur.")
	}

	var p dto.GenerateAIPlanRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Semaine invalide.")
	}
	if err := ctl.Validator.Struct(&p); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 && ve[0].Field() == "RowData" {
			return helper.JsonError(c, fiber.StatusBadRequest, "Données de ligne (rowData) invalides.")
		}
		return helper.JsonError(c, fiber.StatusBadRequest, "Semaine invalide.")
	}

	// un rowData vide est accepté : chaque champ retombe sur sa valeur
	// par défaut dans le prompt
	enseignant := rowfield.StringValue(p.RowData, "Enseignant", "")
	jour := rowfield.StringValue(p.RowData, "Jour", "")
	matiere := rowfield.StringValue(p.RowData, "Matière", "")
	classe := rowfield.StringValue(p.RowData, "Classe", "")
	periode := rowfield.StringValue(p.RowData, "Période", "")
	lecon := rowfield.StringValue(p.RowData, "Leçon", "")
	unite := rowfield.StringValue(p.RowData, "Titre de l'unité", lecon)

	log.Printf("[AI-PLAN] Demande S%d, Classe:%q, Matière:%q", p.Week, classe, matiere)

	// date de la séance : jour brut si la semaine n'a pas de dates
	dateFormatted := jour
	if start, err := ctl.Cal.WeekStart(p.Week); err == nil && jour != "" {
		if date, ok := calendar.DateForWeekday(start, jour); ok {
			dateFormatted = calendar.FormatLongDate(date)
		}
	}

	prompt := service.BuildPrompt(lecon, matiere, classe)
	log.Printf("[AI-PLAN] Appel de l'API Gemini...")
	raw, err := ctl.Generator.GenerateLessonText(c.UserContext(), prompt)
	if err != nil {
		log.Printf("❌ Erreur Gemini /generate-ai-lesson-plan S%d: %v", p.Week, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erreur interne serveur (IA).")
	}
	sections := service.ParseSections(raw)

	tpl, err := docxtpl.Fetch(c.UserContext(), configs.AIWordTemplateURL)
	if err != nil {
		log.Printf("❌ Erreur récupération modèle Word IA: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec du téléchargement du modèle Word.")
	}

	body, err := docxtpl.Render(tpl, map[string]any{
		"enseignant":       enseignant,
		"date":             dateFormatted,
		"semaine":          fmt.Sprintf("Semaine %d", p.Week),
		"matiere":          matiere,
		"classe":           classe,
		"seance":           periode,
		"jour":             jour,
		"unite":            unite,
		"lecon":            lecon,
		"methodes":         sections["METHODES"],
		"outils":           sections["OUTILS"],
		"objectifs":        sections["OBJECTIFS"],
		"minutage":         sections["MINUTAGE"],
		"contenu":          sections["CONTENU"],
		"ressources":       sections["RESSOURCES"],
		"devoirs":          sections["DEVOIRS"],
		"diff_lents":       sections["DIFF_LENTS"],
		"diff_performants": sections["DIFF_PERFORMANTS"],
		"diff_tous":        sections["DIFF_TOUS"],
	})
	if err != nil {
		log.Printf("❌ Erreur rendu Word IA S%d: %v", p.Week, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erreur interne serveur (IA).")
	}

	filename := fmt.Sprintf("Plan_Lecon_IA_S%d_%s_%s.docx",
		p.Week, helper.CompactFileToken(classe), helper.CompactFileToken(matiere))
	log.Printf("[AI-PLAN] Envoi du document Word: %s", filename)
	return helper.SendDocument(c, filename, helper.MIMEWordDocument, body)
}
