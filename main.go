package main

import (
	"fmt"
	"log"

	"inventory-app/config"
	"inventory-app/database"
	"inventory-app/idgen"
	"inventory-app/routes"

	"github.com/gofiber/fiber/v2"
)

func main() {

	config.LoadConfig()

	app := fiber.New()

	db, err := database.OpenConnection()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	idgen.Init()
	database.RunSeeders(db)

	config.SetupCORS(app)

	routes.SetupAuthRoutes(app, db)
	routes.SetupDashboardRoutes(app, db)
	routes.SetupChemicalRoutes(app, db)
	routes.SetupTruckRoutes(app, db)
	routes.SetupDeliveryRoutes(app, db)
	routes.SetupReportRoutes(app, db)
	routes.SetupConfigRoutes(app)

	port := config.APP_PORT
	fmt.Println("🚀 Server running on port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
