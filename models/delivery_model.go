package models

import (
	"time"

	"inventory-app/types"
)

const (
	DeliveryStatusScheduled  = "Scheduled"
	DeliveryStatusOnDelivery = "OnDelivery"
	DeliveryStatusCompleted  = "Completed"
	DeliveryStatusCancelled  = "Cancelled"
)

const AssignmentStatusAssigned = "Assigned"

// Delivery caches the chemical name and unit at creation time so the record
// stays readable even if the chemical is edited or deleted later.
type Delivery struct {
	ID               types.SnowflakeID `json:"id" gorm:"primaryKey"`
	DeliveryNumber   string            `json:"deliveryNumber"`
	DeliveryDate     time.Time         `json:"deliveryDate"`
	ChemicalStockID  types.SnowflakeID `json:"chemicalStockId"`
	ChemicalName     string            `json:"chemicalName"`
	Quantity         int               `json:"quantity"`
	Unit             string            `json:"unit"`
	TruckAssignments []TruckAssignment `json:"truckAssignments" gorm:"foreignKey:DeliveryID"`
	Destination      string            `json:"destination"`
	Status           string            `json:"status"`
	Notes            string            `json:"notes"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

// TruckAssignment snapshots the truck number and driver at assignment time.
// Assignments are fixed when the delivery is created; there is no endpoint
// that adds or removes them afterwards.
type TruckAssignment struct {
	ID             types.SnowflakeID `json:"-" gorm:"primaryKey"`
	DeliveryID     types.SnowflakeID `json:"-" gorm:"index"`
	TruckID        types.SnowflakeID `json:"truckId"`
	TruckNumber    string            `json:"truckNumber"`
	Driver         string            `json:"driver"`
	AssignmentDate time.Time         `json:"assignmentDate"`
	Status         string            `json:"status"`
}
