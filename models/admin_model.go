package models

import (
	"time"

	"inventory-app/types"
)

type Admin struct {
	ID        types.SnowflakeID `json:"id" gorm:"primaryKey"`
	Name      string            `json:"name"`
	Email     string            `json:"email" gorm:"unique"`
	Password  string            `json:"-"`
	IsAdmin   bool              `json:"isAdmin"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}
