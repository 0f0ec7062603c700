package models

import (
	"time"

	"inventory-app/types"
)

type ChemicalStock struct {
	ID              types.SnowflakeID `json:"id" gorm:"primaryKey"`
	Name            string            `json:"name"`
	Formula         string            `json:"formula"`
	Description     string            `json:"description"`
	Price           float64           `json:"price"`
	Quantity        int               `json:"quantity"`
	Unit            string            `json:"unit"`
	MinQuantity     int               `json:"minQuantity"`
	Supplier        string            `json:"supplier"`
	Category        string            `json:"category"`
	LastRestockDate time.Time         `json:"lastRestockDate"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// IsLowStock is computed, never stored. Equal counts as low.
func (c *ChemicalStock) IsLowStock() bool {
	return c.Quantity <= c.MinQuantity
}
