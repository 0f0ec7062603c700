package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupTruckRoutes(app *fiber.App, db *gorm.DB) {
	truckController := controllers.NewTruckController(db)
	api := app.Group(config.MAIN_ROUTES+"/trucks", middleware.AuthMiddleware)

	api.Get("/", truckController.GetAll)
	api.Post("/", truckController.Create)
	api.Get("/available", truckController.GetAvailable)
	api.Get("/:id", truckController.GetByID)
	api.Put("/:id", truckController.Update)
	api.Patch("/:id/status", truckController.UpdateStatus)
	api.Delete("/:id", truckController.Delete)
}
