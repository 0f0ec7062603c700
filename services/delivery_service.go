package services

import (
	"errors"
	"fmt"
	"time"

	"inventory-app/apperr"
	"inventory-app/idgen"
	"inventory-app/models"
	"inventory-app/repositories"
	"inventory-app/types"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// DeliveryService schedules deliveries: it resolves truck-date conflicts,
// snapshots truck assignments and keeps the chemical stock in step with the
// created delivery.
type DeliveryService struct {
	DB        *gorm.DB
	repo      *repositories.DeliveryRepository
	chemicals *ChemicalService

	// Creation-time conflict policy. The OnDelivery guard ignores it.
	AllowSameDayMultiple bool

	mailer *Mailer
}

func NewDeliveryService(db *gorm.DB, allowSameDayMultiple bool, mailer *Mailer) *DeliveryService {
	return &DeliveryService{
		DB:                   db,
		repo:                 repositories.NewDeliveryRepository(db),
		chemicals:            NewChemicalService(db),
		AllowSameDayMultiple: allowSameDayMultiple,
		mailer:               mailer,
	}
}

type CreateDeliveryInput struct {
	DeliveryDate    time.Time           `json:"deliveryDate" validate:"required"`
	ChemicalStockID types.SnowflakeID   `json:"chemicalStockId" validate:"required"`
	Quantity        int                 `json:"quantity" validate:"required,gt=0"`
	Destination     string              `json:"destination" validate:"required"`
	TruckIDs        []types.SnowflakeID `json:"truckIds"`
	Notes           string              `json:"notes"`
}

func (s *DeliveryService) GetAll() ([]models.Delivery, error) {
	return s.repo.GetAll()
}

func (s *DeliveryService) GetByID(id types.SnowflakeID) (*models.Delivery, error) {
	delivery, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: delivery %s", apperr.ErrNotFound, id)
		}
		return nil, err
	}
	return delivery, nil
}

// GetByDateRange returns deliveries with inclusive bounds and no status filter.
func (s *DeliveryService) GetByDateRange(start, end time.Time) ([]models.Delivery, error) {
	return s.repo.GetByDateRange(start, end)
}

// Create validates stock, resolves truck conflicts for the delivery date,
// persists the delivery and decrements the chemical stock. The conflict check
// and the decrement are separate statements against the database; two
// concurrent creations can both pass the checks before either writes.
func (s *DeliveryService) Create(input CreateDeliveryInput) (*models.Delivery, error) {
	chemical, err := s.chemicals.GetByID(input.ChemicalStockID)
	if err != nil {
		return nil, err
	}

	if chemical.Quantity < input.Quantity {
		return nil, fmt.Errorf("%w: insufficient stock for %s", apperr.ErrInvalidRequest, chemical.Name)
	}

	now := time.Now().UTC()
	startOfDay, endOfDay := repositories.DayWindow(input.DeliveryDate)

	assignments := []models.TruckAssignment{}
	for _, truckID := range input.TruckIDs {
		conflict, err := s.repo.FindTruckConflict(truckID, startOfDay, endOfDay)
		if err != nil {
			return nil, err
		}
		if conflict != nil && !s.AllowSameDayMultiple {
			return nil, fmt.Errorf("%w: truck %s is already assigned for the selected date", apperr.ErrInvalidRequest, truckID)
		}

		var truck models.Truck
		if err := s.DB.First(&truck, "id = ?", truckID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Unknown truck ids are skipped without an assignment.
				continue
			}
			return nil, err
		}

		assignments = append(assignments, models.TruckAssignment{
			ID:             types.SnowflakeID(idgen.GenerateID()),
			TruckID:        truck.ID,
			TruckNumber:    truck.TruckNumber,
			Driver:         truck.Driver,
			AssignmentDate: now,
			Status:         models.AssignmentStatusAssigned,
		})
	}

	delivery := models.Delivery{
		ID:               types.SnowflakeID(idgen.GenerateID()),
		DeliveryNumber:   "DLV-" + now.Format("20060102150405"),
		DeliveryDate:     input.DeliveryDate,
		ChemicalStockID:  chemical.ID,
		ChemicalName:     chemical.Name,
		Quantity:         input.Quantity,
		Unit:             chemical.Unit,
		TruckAssignments: assignments,
		Destination:      input.Destination,
		Status:           models.DeliveryStatusScheduled,
		Notes:            input.Notes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.DB.Create(&delivery).Error; err != nil {
		return nil, err
	}

	// Not transactional with the insert above: a failed decrement leaves the
	// delivery recorded against stock that was never reduced.
	if err := s.chemicals.Decrement(chemical.ID, input.Quantity); err != nil {
		return nil, err
	}

	s.notifyIfLowStock(chemical.ID)

	return &delivery, nil
}

func (s *DeliveryService) notifyIfLowStock(chemicalID types.SnowflakeID) {
	if !s.mailer.Enabled() {
		return
	}
	chemical, err := s.chemicals.GetByID(chemicalID)
	if err != nil {
		return
	}
	if chemical.IsLowStock() {
		// Best effort; a mail failure never fails the delivery.
		_ = s.mailer.SendLowStockAlert(chemical)
	}
}

// UpdateStatus sets the delivery status. Transitioning to OnDelivery is
// rejected when any assigned truck is already OnDelivery for another delivery
// on the same calendar day; this guard holds regardless of the same-day
// assignment policy. Other status values are written as-is.
func (s *DeliveryService) UpdateStatus(id types.SnowflakeID, status string) (*models.Delivery, error) {
	if status == models.DeliveryStatusOnDelivery {
		current, err := s.GetByID(id)
		if err != nil {
			return nil, err
		}

		var truckIDs []types.SnowflakeID
		for _, ta := range current.TruckAssignments {
			if ta.TruckID != 0 && !slices.Contains(truckIDs, ta.TruckID) {
				truckIDs = append(truckIDs, ta.TruckID)
			}
		}

		if len(truckIDs) > 0 {
			startOfDay, endOfDay := repositories.DayWindow(current.DeliveryDate)
			conflict, err := s.repo.FindOnDeliveryConflict(truckIDs, id, startOfDay, endOfDay)
			if err != nil {
				return nil, err
			}
			if conflict != nil {
				return nil, fmt.Errorf("%w: one or more trucks assigned to this delivery are currently OnDelivery for the same date", apperr.ErrInvalidRequest)
			}
		}
	}

	result := s.DB.Model(&models.Delivery{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now().UTC(),
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: delivery %s", apperr.ErrNotFound, id)
	}

	return s.GetByID(id)
}

// Delete removes the delivery and its assignments. It does not restore the
// chemical quantity; deleting is not a cancellation with rollback.
func (s *DeliveryService) Delete(id types.SnowflakeID) (bool, error) {
	if err := s.DB.Delete(&models.TruckAssignment{}, "delivery_id = ?", id).Error; err != nil {
		return false, err
	}

	result := s.DB.Delete(&models.Delivery{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
