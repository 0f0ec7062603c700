package repositories

import (
	"errors"
	"time"

	"inventory-app/models"
	"inventory-app/types"

	"gorm.io/gorm"
)

type DeliveryRepository struct {
	DB *gorm.DB
}

func NewDeliveryRepository(db *gorm.DB) *DeliveryRepository {
	return &DeliveryRepository{DB: db}
}

// DayWindow returns the inclusive UTC calendar-day bounds for a delivery date.
func DayWindow(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24*time.Hour - time.Nanosecond)
	return start, end
}

func (r *DeliveryRepository) GetAll() ([]models.Delivery, error) {
	var deliveries []models.Delivery
	err := r.DB.Preload("TruckAssignments").Order("delivery_date desc").Find(&deliveries).Error
	return deliveries, err
}

func (r *DeliveryRepository) GetByID(id types.SnowflakeID) (*models.Delivery, error) {
	var delivery models.Delivery
	err := r.DB.Preload("TruckAssignments").First(&delivery, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &delivery, nil
}

func (r *DeliveryRepository) GetByDateRange(start, end time.Time) ([]models.Delivery, error) {
	var deliveries []models.Delivery
	err := r.DB.Preload("TruckAssignments").
		Where("delivery_date >= ? AND delivery_date <= ?", start, end).
		Order("delivery_date").
		Find(&deliveries).Error
	return deliveries, err
}

// FindTruckConflict looks for an active (non-cancelled) delivery within the
// given day window that already has the truck assigned.
func (r *DeliveryRepository) FindTruckConflict(truckID types.SnowflakeID, start, end time.Time) (*models.Delivery, error) {
	var delivery models.Delivery
	err := r.DB.
		Joins("JOIN truck_assignments ON truck_assignments.delivery_id = deliveries.id").
		Where("truck_assignments.truck_id = ?", truckID).
		Where("deliveries.delivery_date >= ? AND deliveries.delivery_date <= ?", start, end).
		Where("deliveries.status <> ?", models.DeliveryStatusCancelled).
		First(&delivery).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &delivery, nil
}

// FindOnDeliveryConflict looks for another delivery (id != excludeID) in the
// day window with status OnDelivery sharing any of the given trucks.
func (r *DeliveryRepository) FindOnDeliveryConflict(truckIDs []types.SnowflakeID, excludeID types.SnowflakeID, start, end time.Time) (*models.Delivery, error) {
	var delivery models.Delivery
	err := r.DB.
		Joins("JOIN truck_assignments ON truck_assignments.delivery_id = deliveries.id").
		Where("truck_assignments.truck_id IN ?", truckIDs).
		Where("deliveries.id <> ?", excludeID).
		Where("deliveries.delivery_date >= ? AND deliveries.delivery_date <= ?", start, end).
		Where("deliveries.status = ?", models.DeliveryStatusOnDelivery).
		First(&delivery).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &delivery, nil
}
