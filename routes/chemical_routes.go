package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupChemicalRoutes(app *fiber.App, db *gorm.DB) {
	chemicalController := controllers.NewChemicalController(db)
	api := app.Group(config.MAIN_ROUTES+"/chemicals", middleware.AuthMiddleware)

	api.Get("/", chemicalController.GetAll)
	api.Post("/", chemicalController.Create)
	api.Get("/low-stock", chemicalController.GetLowStock)
	api.Get("/:id", chemicalController.GetByID)
	api.Put("/:id", chemicalController.Update)
	api.Delete("/:id", chemicalController.Delete)
}
