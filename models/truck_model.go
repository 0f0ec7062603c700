package models

import (
	"time"

	"inventory-app/types"
)

const (
	TruckStatusAvailable   = "Available"
	TruckStatusInUse       = "InUse"
	TruckStatusMaintenance = "Maintenance"
)

// Truck status is a fleet-management flag set by operators. It is not derived
// from delivery assignments.
type Truck struct {
	ID                  types.SnowflakeID `json:"id" gorm:"primaryKey"`
	TruckNumber         string            `json:"truckNumber" gorm:"unique"`
	Capacity            float64           `json:"capacity"`
	CapacityUnit        string            `json:"capacityUnit"`
	Driver              string            `json:"driver"`
	DriverPhone         string            `json:"driverPhone"`
	Status              string            `json:"status"`
	LastMaintenanceDate time.Time         `json:"lastMaintenanceDate"`
	NextMaintenanceDate time.Time         `json:"nextMaintenanceDate"`
	CreatedAt           time.Time         `json:"createdAt"`
	UpdatedAt           time.Time         `json:"updatedAt"`
}
