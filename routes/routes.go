package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/openretail/backoffice/controllers"
	"github.com/openretail/backoffice/controllers/admin_controllers"
	"github.com/openretail/backoffice/routes/middlewares"
)

func SetupRouter() *fiber.App {
	app := fiber.New()

	app.Get("/api/v2/public/timestamp", controllers.GetTimestamp)

	app.Get("/api/v2/admin/finance/summary", middlewares.Authenticate, middlewares.AdminValidator, admin_controllers.GetFinanceSummary)
	app.Get("/api/v2/admin/finance/withdraws", middlewares.Authenticate, middlewares.AdminValidator, admin_controllers.GetWithdraws)
	app.Post("/api/v2/admin/finance/withdraws", middlewares.Authenticate, middlewares.AdminValidator, admin_controllers.CreateWithdraw)
	app.Patch("/api/v2/admin/finance/withdraws/:id", middlewares.Authenticate, middlewares.AdminValidator, admin_controllers.UpdateWithdraw)
	app.Delete("/api/v2/admin/finance/withdraws/:id", middlewares.Authenticate, middlewares.AdminValidator, admin_controllers.DeleteWithdraw)

	return app
}
