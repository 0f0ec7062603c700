package controllers

import (
	"inventory-app/apperr"

	"github.com/gofiber/fiber/v2"
)

// respondError maps service errors onto the HTTP taxonomy: InvalidRequest is a
// 400, NotFound a 404, everything else an opaque 500. No retries anywhere.
func respondError(ctx *fiber.Ctx, err error) error {
	switch {
	case apperr.IsInvalidRequest(err):
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	case apperr.IsNotFound(err):
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": err.Error()})
	default:
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
}
