package controllers

import (
	"time"

	"inventory-app/config"
	"inventory-app/services"
	"inventory-app/types"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DeliveryController struct {
	DB *gorm.DB
}

func NewDeliveryController(db *gorm.DB) *DeliveryController {
	return &DeliveryController{DB: db}
}

func (c *DeliveryController) service() *services.DeliveryService {
	return services.NewDeliveryService(c.DB, config.DeliveryAllowSameDayMultiple, services.NewMailerFromConfig())
}

func (c *DeliveryController) GetAll(ctx *fiber.Ctx) error {
	deliveries, err := c.service().GetAll()
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": deliveries})
}

func (c *DeliveryController) GetByID(ctx *fiber.Ctx) error {
	id, err := types.ParseID(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	delivery, err := c.service().GetByID(id)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": delivery})
}

// parseDateParam accepts RFC3339 timestamps or plain dates.
func parseDateParam(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

func (c *DeliveryController) GetByDateRange(ctx *fiber.Ctx) error {
	start, err := parseDateParam(ctx.Query("startDate"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid startDate"})
	}
	end, err := parseDateParam(ctx.Query("endDate"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid endDate"})
	}

	deliveries, err := c.service().GetByDateRange(start, end)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": deliveries})
}

func (c *DeliveryController) Create(ctx *fiber.Ctx) error {
	var input services.CreateDeliveryInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	delivery, err := c.service().Create(input)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Delivery created successfully", "data": delivery})
}

func (c *DeliveryController) UpdateStatus(ctx *fiber.Ctx) error {
	id, err := types.ParseID(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var payload struct {
		Status string `json:"status" validate:"required"`
	}
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	delivery, err := c.service().UpdateStatus(id, payload.Status)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Delivery status updated", "data": delivery})
}

func (c *DeliveryController) Delete(ctx *fiber.Ctx) error {
	id, err := types.ParseID(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	deleted, err := c.service().Delete(id)
	if err != nil {
		return respondError(ctx, err)
	}
	if !deleted {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Delivery not found"})
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
