// file: internals/features/plans/route/plans_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	planCtl "planhebdo_backend/internals/features/plans/controller"
)

func PlanRoutes(app fiber.Router, db *gorm.DB) {
	ctl := planCtl.NewPlanController(db, nil)

	app.Post("/save-plan", ctl.SavePlan)
	app.Post("/save-notes", ctl.SaveNotes)
	app.Post("/save-row", ctl.SaveRow)
	app.Get("/plans/:week", ctl.GetPlan)
	app.Get("/api/all-classes", ctl.AllClasses)
}
