// file: internals/features/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	authCtl "planhebdo_backend/internals/features/auth/controller"
	"planhebdo_backend/internals/middlewares"
)

func AuthRoutes(app fiber.Router) {
	ctl := authCtl.NewAuthController()

	app.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
}
