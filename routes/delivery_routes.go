package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDeliveryRoutes(app *fiber.App, db *gorm.DB) {
	deliveryController := controllers.NewDeliveryController(db)
	api := app.Group(config.MAIN_ROUTES+"/deliveries", middleware.AuthMiddleware)

	api.Get("/", deliveryController.GetAll)
	api.Post("/", deliveryController.Create)
	api.Get("/date-range", deliveryController.GetByDateRange)
	api.Get("/:id", deliveryController.GetByID)
	api.Patch("/:id/status", deliveryController.UpdateStatus)
	api.Delete("/:id", deliveryController.Delete)
}
