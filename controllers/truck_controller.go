package controllers

import (
	"inventory-app/services"
	"inventory-app/types"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type TruckController struct {
	DB *gorm.DB
}

func NewTruckController(db *gorm.DB) *TruckController {
	return &TruckController{DB: db}
}

func (c *TruckController) GetAll(ctx *fiber.Ctx) error {
	svc := services.NewTruckService(c.DB)
	trucks, err := svc.GetAll()
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": trucks})
}

func (c *TruckController) GetByID(ctx *fiber.Ctx) error {
	id, err := types.ParseID(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	svc := services.NewTruckService(c.DB)
	truck, err := svc.GetByID(id)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": truck})
}

func (c *TruckController) Create(ctx *fiber.Ctx) error {
	var input services.TruckInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	svc := services.NewTruckService(c.DB)
	truck, err := svc.Create(input)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Truck created successfully", "data": truck})
}

func (c *TruckController) Update(ctx *fiber.Ctx) error {
	id, err := types.ParseID(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input services.TruckInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	svc := services.NewTruckService(c.DB)
	truck, err := svc.Update(id, input)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Truck updated successfully", "data": truck})
}

func (c *TruckController) Delete(ctx *fiber.Ctx) error {
	id, err := types.ParseID(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	svc := services.NewTruckService(c.DB)
	deleted, err := svc.Delete(id)
	if err != nil {
		return respondError(ctx, err)
	}
	if !deleted {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Truck not found"})
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *TruckController) GetAvailable(ctx *fiber.Ctx) error {
	svc := services.NewTruckService(c.DB)
	trucks, err := svc.GetAvailable()
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": trucks})
}

func (c *TruckController) UpdateStatus(ctx *fiber.Ctx) error {
	id, err := types.ParseID(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var payload struct {
		Status string `json:"status" validate:"required,oneof=Available InUse Maintenance"`
	}
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	svc := services.NewTruckService(c.DB)
	truck, err := svc.UpdateStatus(id, payload.Status)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Truck status updated", "data": truck})
}
