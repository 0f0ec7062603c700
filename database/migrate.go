package database

import (
	"inventory-app/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Admin{},
		&models.ChemicalStock{},
		&models.Truck{},
		&models.Delivery{},
		&models.TruckAssignment{},
	)
}
