package database

import (
	"log"

	"inventory-app/idgen"
	"inventory-app/models"
	"inventory-app/types"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func RunSeeders(db *gorm.DB) {
	SeedAdmin(db)
}

// SeedAdmin creates the default dashboard account when none exists.
func SeedAdmin(db *gorm.DB) {
	admin := models.Admin{
		Name:    "Administrator",
		Email:   "admin@hazwal.co.id",
		IsAdmin: true,
	}

	var existing models.Admin
	err := db.Where("email = ?", admin.Email).First(&existing).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			hashed, hashErr := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
			if hashErr != nil {
				log.Fatalf("Failed to hash default admin password: %v", hashErr)
			}
			admin.ID = types.SnowflakeID(idgen.GenerateID())
			admin.Password = string(hashed)
			if err := db.Create(&admin).Error; err != nil {
				log.Fatalf("Failed to create default admin: %v", err)
			}
			log.Println("Seeded default admin account")
		} else {
			log.Fatalf("Unexpected DB error: %v", err)
		}
	}
}
