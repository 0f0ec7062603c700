package controllers

import (
	"inventory-app/config"

	"github.com/gofiber/fiber/v2"
)

type ConfigController struct{}

// GetDeliveryConfig exposes the scheduler conflict policy to the dashboard so
// it can adjust the truck picker behavior.
func (c *ConfigController) GetDeliveryConfig(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"allowSameDayMultipleAssignments": config.DeliveryAllowSameDayMultiple,
		},
	})
}
