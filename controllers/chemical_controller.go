package controllers

import (
	"inventory-app/services"
	"inventory-app/types"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ChemicalController struct {
	DB *gorm.DB
}

func NewChemicalController(db *gorm.DB) *ChemicalController {
	return &ChemicalController{DB: db}
}

func (c *ChemicalController) GetAll(ctx *fiber.Ctx) error {
	svc := services.NewChemicalService(c.DB)
	chemicals, err := svc.GetAll()
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": chemicals})
}

func (c *ChemicalController) GetByID(ctx *fiber.Ctx) error {
	id, err := types.ParseID(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	svc := services.NewChemicalService(c.DB)
	chemical, err := svc.GetByID(id)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": chemical})
}

func (c *ChemicalController) Create(ctx *fiber.Ctx) error {
	var input services.ChemicalInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	svc := services.NewChemicalService(c.DB)
	chemical, err := svc.Create(input)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Chemical created successfully", "data": chemical})
}

func (c *ChemicalController) Update(ctx *fiber.Ctx) error {
	id, err := types.ParseID(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input services.ChemicalInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	svc := services.NewChemicalService(c.DB)
	chemical, err := svc.Update(id, input)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Chemical updated successfully", "data": chemical})
}

func (c *ChemicalController) Delete(ctx *fiber.Ctx) error {
	id, err := types.ParseID(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	svc := services.NewChemicalService(c.DB)
	deleted, err := svc.Delete(id)
	if err != nil {
		return respondError(ctx, err)
	}
	if !deleted {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Chemical not found"})
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *ChemicalController) GetLowStock(ctx *fiber.Ctx) error {
	svc := services.NewChemicalService(c.DB)
	chemicals, err := svc.GetLowStock()
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": chemicals})
}
