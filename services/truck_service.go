package services

import (
	"errors"
	"fmt"
	"time"

	"inventory-app/apperr"
	"inventory-app/idgen"
	"inventory-app/models"
	"inventory-app/types"

	"gorm.io/gorm"
)

type TruckService struct {
	DB *gorm.DB
}

func NewTruckService(db *gorm.DB) *TruckService {
	return &TruckService{DB: db}
}

type TruckInput struct {
	TruckNumber  string  `json:"truckNumber" validate:"required"`
	Capacity     float64 `json:"capacity" validate:"gte=0"`
	CapacityUnit string  `json:"capacityUnit"`
	Driver       string  `json:"driver" validate:"required"`
	DriverPhone  string  `json:"driverPhone"`
}

func (s *TruckService) GetAll() ([]models.Truck, error) {
	var trucks []models.Truck
	err := s.DB.Order("truck_number").Find(&trucks).Error
	return trucks, err
}

func (s *TruckService) GetByID(id types.SnowflakeID) (*models.Truck, error) {
	var truck models.Truck
	if err := s.DB.First(&truck, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: truck %s", apperr.ErrNotFound, id)
		}
		return nil, err
	}
	return &truck, nil
}

func (s *TruckService) Create(input TruckInput) (*models.Truck, error) {
	now := time.Now().UTC()
	truck := models.Truck{
		ID:                  types.SnowflakeID(idgen.GenerateID()),
		TruckNumber:         input.TruckNumber,
		Capacity:            input.Capacity,
		CapacityUnit:        input.CapacityUnit,
		Driver:              input.Driver,
		DriverPhone:         input.DriverPhone,
		Status:              models.TruckStatusAvailable,
		LastMaintenanceDate: now,
		NextMaintenanceDate: now.AddDate(0, 0, 30),
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.DB.Create(&truck).Error; err != nil {
		return nil, err
	}
	return &truck, nil
}

func (s *TruckService) Update(id types.SnowflakeID, input TruckInput) (*models.Truck, error) {
	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"truck_number":  input.TruckNumber,
		"capacity":      input.Capacity,
		"capacity_unit": input.CapacityUnit,
		"driver":        input.Driver,
		"driver_phone":  input.DriverPhone,
		"updated_at":    time.Now().UTC(),
	}

	if err := s.DB.Model(&models.Truck{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *TruckService) Delete(id types.SnowflakeID) (bool, error) {
	result := s.DB.Delete(&models.Truck{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *TruckService) GetAvailable() ([]models.Truck, error) {
	var trucks []models.Truck
	err := s.DB.Where("status = ?", models.TruckStatusAvailable).Order("truck_number").Find(&trucks).Error
	return trucks, err
}

// UpdateStatus flips the fleet-management flag. The delivery scheduler never
// calls this; assigning a truck to a delivery leaves its status untouched.
func (s *TruckService) UpdateStatus(id types.SnowflakeID, status string) (*models.Truck, error) {
	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}

	if err := s.DB.Model(&models.Truck{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}
