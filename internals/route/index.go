// file: internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	aiRoute "planhebdo_backend/internals/features/ai/route"
	aiService "planhebdo_backend/internals/features/ai/service"
	authRoute "planhebdo_backend/internals/features/auth/route"
	exportRoute "planhebdo_backend/internals/features/exports/route"
	plansRoute "planhebdo_backend/internals/features/plans/route"

	"planhebdo_backend/internals/configs"
	"planhebdo_backend/internals/helpers/calendar"
)

// SetupRoutes monte toutes les routes de l'application. Le générateur
// IA peut être nil (clé API absente) : la route correspondante répond
// alors 503.
func SetupRoutes(app *fiber.App, db *gorm.DB, gen *aiService.Generator) {
	cal := calendar.New(configs.WeekDateRanges)

	authRoute.AuthRoutes(app)
	plansRoute.PlanRoutes(app, db)
	exportRoute.ExportRoutes(app, db, cal)
	aiRoute.AIRoutes(app, gen, cal)
}
