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

type ChemicalService struct {
	DB *gorm.DB
}

func NewChemicalService(db *gorm.DB) *ChemicalService {
	return &ChemicalService{DB: db}
}

type ChemicalInput struct {
	Name        string  `json:"name" validate:"required"`
	Formula     string  `json:"formula"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	Quantity    int     `json:"quantity" validate:"gte=0"`
	Unit        string  `json:"unit" validate:"required"`
	MinQuantity int     `json:"minQuantity" validate:"gte=0"`
	Supplier    string  `json:"supplier"`
	Category    string  `json:"category"`
}

func (s *ChemicalService) GetAll() ([]models.ChemicalStock, error) {
	var chemicals []models.ChemicalStock
	err := s.DB.Order("name").Find(&chemicals).Error
	return chemicals, err
}

func (s *ChemicalService) GetByID(id types.SnowflakeID) (*models.ChemicalStock, error) {
	var chemical models.ChemicalStock
	if err := s.DB.First(&chemical, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: chemical %s", apperr.ErrNotFound, id)
		}
		return nil, err
	}
	return &chemical, nil
}

func (s *ChemicalService) Create(input ChemicalInput) (*models.ChemicalStock, error) {
	now := time.Now().UTC()
	chemical := models.ChemicalStock{
		ID:              types.SnowflakeID(idgen.GenerateID()),
		Name:            input.Name,
		Formula:         input.Formula,
		Description:     input.Description,
		Price:           input.Price,
		Quantity:        input.Quantity,
		Unit:            input.Unit,
		MinQuantity:     input.MinQuantity,
		Supplier:        input.Supplier,
		Category:        input.Category,
		LastRestockDate: now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.DB.Create(&chemical).Error; err != nil {
		return nil, err
	}
	return &chemical, nil
}

func (s *ChemicalService) Update(id types.SnowflakeID, input ChemicalInput) (*models.ChemicalStock, error) {
	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":         input.Name,
		"formula":      input.Formula,
		"description":  input.Description,
		"price":        input.Price,
		"quantity":     input.Quantity,
		"unit":         input.Unit,
		"min_quantity": input.MinQuantity,
		"supplier":     input.Supplier,
		"category":     input.Category,
		"updated_at":   time.Now().UTC(),
	}

	if err := s.DB.Model(&models.ChemicalStock{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *ChemicalService) Delete(id types.SnowflakeID) (bool, error) {
	result := s.DB.Delete(&models.ChemicalStock{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// GetLowStock filters in application code because quantity and min_quantity
// live on the same row and the filter stays trivial at this data scale.
func (s *ChemicalService) GetLowStock() ([]models.ChemicalStock, error) {
	chemicals, err := s.GetAll()
	if err != nil {
		return nil, err
	}

	lowStock := []models.ChemicalStock{}
	for _, c := range chemicals {
		if c.IsLowStock() {
			lowStock = append(lowStock, c)
		}
	}
	return lowStock, nil
}

// Decrement writes quantity = current - amount as a plain read-then-set. The
// caller must have validated that amount does not exceed the current stock.
func (s *ChemicalService) Decrement(id types.SnowflakeID, amount int) error {
	chemical, err := s.GetByID(id)
	if err != nil {
		return err
	}

	return s.DB.Model(&models.ChemicalStock{}).Where("id = ?", id).Updates(map[string]interface{}{
		"quantity":   chemical.Quantity - amount,
		"updated_at": time.Now().UTC(),
	}).Error
}
