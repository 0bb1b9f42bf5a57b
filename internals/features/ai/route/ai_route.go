// file: internals/features/ai/route/ai_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	aiCtl "planhebdo_backend/internals/features/ai/controller"
	aiService "planhebdo_backend/internals/features/ai/service"
	"planhebdo_backend/internals/helpers/calendar"
)

func AIRoutes(app fiber.Router, gen *aiService.Generator, cal *calendar.Calendar) {
	// un *Generator nil doit rester une interface nil pour que le
	// contrôleur réponde 503
	var lg aiCtl.LessonGenerator
	if gen != nil {
		lg = gen
	}
	ctl := aiCtl.NewAIController(lg, cal, nil)

	app.Post("/generate-ai-lesson-plan", ctl.GenerateLessonPlan)
}
