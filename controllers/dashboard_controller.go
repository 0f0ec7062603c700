package controllers

import (
	"inventory-app/models"
	"inventory-app/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

func (c *DashboardController) GetDashboard(ctx *fiber.Ctx) error {
	var totalChemicals, totalTrucks, totalDeliveries int64

	if err := c.DB.Model(&models.ChemicalStock{}).Count(&totalChemicals).Error; err != nil {
		return respondError(ctx, err)
	}
	if err := c.DB.Model(&models.Truck{}).Count(&totalTrucks).Error; err != nil {
		return respondError(ctx, err)
	}
	if err := c.DB.Model(&models.Delivery{}).Count(&totalDeliveries).Error; err != nil {
		return respondError(ctx, err)
	}

	lowStock, err := services.NewChemicalService(c.DB).GetLowStock()
	if err != nil {
		return respondError(ctx, err)
	}

	truckCounts := map[string]int64{}
	for _, status := range []string{models.TruckStatusAvailable, models.TruckStatusInUse, models.TruckStatusMaintenance} {
		var count int64
		if err := c.DB.Model(&models.Truck{}).Where("status = ?", status).Count(&count).Error; err != nil {
			return respondError(ctx, err)
		}
		truckCounts[status] = count
	}

	deliveryCounts := map[string]int64{}
	for _, status := range []string{
		models.DeliveryStatusScheduled,
		models.DeliveryStatusOnDelivery,
		models.DeliveryStatusCompleted,
		models.DeliveryStatusCancelled,
	} {
		var count int64
		if err := c.DB.Model(&models.Delivery{}).Where("status = ?", status).Count(&count).Error; err != nil {
			return respondError(ctx, err)
		}
		deliveryCounts[status] = count
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"totalChemicals":  totalChemicals,
			"lowStockCount":   len(lowStock),
			"lowStock":        lowStock,
			"totalTrucks":     totalTrucks,
			"trucksByStatus":  truckCounts,
			"totalDeliveries": totalDeliveries,
			"deliveriesByStatus": deliveryCounts,
		},
	})
}
