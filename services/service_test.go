package services

import (
	"testing"

	"inventory-app/database"
	"inventory-app/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func seedChemical(t *testing.T, db *gorm.DB, name string, quantity, minQuantity int) *models.ChemicalStock {
	t.Helper()

	svc := NewChemicalService(db)
	chemical, err := svc.Create(ChemicalInput{
		Name:        name,
		Formula:     name,
		Quantity:    quantity,
		MinQuantity: minQuantity,
		Unit:        "Kg",
	})
	if err != nil {
		t.Fatalf("failed to seed chemical %s: %v", name, err)
	}
	return chemical
}

func seedTruck(t *testing.T, db *gorm.DB, number, driver string) *models.Truck {
	t.Helper()

	svc := NewTruckService(db)
	truck, err := svc.Create(TruckInput{
		TruckNumber: number,
		Capacity:    8000,
		Driver:      driver,
	})
	if err != nil {
		t.Fatalf("failed to seed truck %s: %v", number, err)
	}
	return truck
}
