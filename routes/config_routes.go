package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupConfigRoutes(app *fiber.App) {
	configController := &controllers.ConfigController{}
	api := app.Group(config.MAIN_ROUTES+"/config", middleware.AuthMiddleware)

	api.Get("/delivery", configController.GetDeliveryConfig)
}
