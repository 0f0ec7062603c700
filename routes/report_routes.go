package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupReportRoutes(app *fiber.App, db *gorm.DB) {
	reportController := controllers.NewReportController(db)
	api := app.Group(config.MAIN_ROUTES+"/reports", middleware.AuthMiddleware)

	api.Get("/chemicals/excel", reportController.ExportChemicals)
	api.Get("/deliveries/excel", reportController.ExportDeliveries)
	api.Get("/trucks/excel", reportController.ExportTrucks)
}
