// file: internals/features/exports/route/exports_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	exportCtl "planhebdo_backend/internals/features/exports/controller"
	"planhebdo_backend/internals/helpers/calendar"
)

func ExportRoutes(app fiber.Router, db *gorm.DB, cal *calendar.Calendar) {
	ctl := exportCtl.NewExportController(db, cal, nil)

	app.Post("/generate-word", ctl.GenerateWord)
	app.Post("/generate-excel-workbook", ctl.GenerateWorkbook)
	app.Post("/api/full-report-by-class", ctl.FullReport)
}
