package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"inventory-app/config"
	"inventory-app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

func sendExcel(ctx *fiber.Ctx, f *excelize.File, name string) error {
	filename := fmt.Sprintf("%s-%s.xlsx", name, time.Now().Format("20060102"))
	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(http.StatusInternalServerError).SendString("Failed to generate Excel")
	}
	return nil
}

func (c *ReportController) ExportChemicals(ctx *fiber.Ctx) error {
	svc := services.NewChemicalService(c.DB)
	chemicals, err := svc.GetAll()
	if err != nil {
		return respondError(ctx, err)
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Name")
	f.SetCellValue(sheet, "B1", "Formula")
	f.SetCellValue(sheet, "C1", "Quantity")
	f.SetCellValue(sheet, "D1", "Unit")
	f.SetCellValue(sheet, "E1", "Min Quantity")
	f.SetCellValue(sheet, "F1", "Price")
	f.SetCellValue(sheet, "G1", "Supplier")
	f.SetCellValue(sheet, "H1", "Category")

	for i, chemical := range chemicals {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), chemical.Name)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), chemical.Formula)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", i+2), chemical.Quantity)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", i+2), chemical.Unit)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", i+2), chemical.MinQuantity)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", i+2), chemical.Price)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", i+2), chemical.Supplier)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", i+2), chemical.Category)
	}

	return sendExcel(ctx, f, "chemical-stock-report")
}

func (c *ReportController) ExportDeliveries(ctx *fiber.Ctx) error {
	svc := services.NewDeliveryService(c.DB, config.DeliveryAllowSameDayMultiple, nil)
	deliveries, err := svc.GetAll()
	if err != nil {
		return respondError(ctx, err)
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Delivery No")
	f.SetCellValue(sheet, "B1", "Date")
	f.SetCellValue(sheet, "C1", "Chemical")
	f.SetCellValue(sheet, "D1", "Quantity")
	f.SetCellValue(sheet, "E1", "Unit")
	f.SetCellValue(sheet, "F1", "Destination")
	f.SetCellValue(sheet, "G1", "Trucks")
	f.SetCellValue(sheet, "H1", "Drivers")
	f.SetCellValue(sheet, "I1", "Status")

	for i, d := range deliveries {
		var trucks, drivers []string
		for _, ta := range d.TruckAssignments {
			trucks = append(trucks, ta.TruckNumber)
			drivers = append(drivers, ta.Driver)
		}

		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), d.DeliveryNumber)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), d.DeliveryDate.Format("2006-01-02"))
		f.SetCellValue(sheet, fmt.Sprintf("C%d", i+2), d.ChemicalName)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", i+2), d.Quantity)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", i+2), d.Unit)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", i+2), d.Destination)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", i+2), strings.Join(trucks, ", "))
		f.SetCellValue(sheet, fmt.Sprintf("H%d", i+2), strings.Join(drivers, ", "))
		f.SetCellValue(sheet, fmt.Sprintf("I%d", i+2), d.Status)
	}

	return sendExcel(ctx, f, "delivery-report")
}

func (c *ReportController) ExportTrucks(ctx *fiber.Ctx) error {
	svc := services.NewTruckService(c.DB)
	trucks, err := svc.GetAll()
	if err != nil {
		return respondError(ctx, err)
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Truck Number")
	f.SetCellValue(sheet, "B1", "Capacity")
	f.SetCellValue(sheet, "C1", "Driver")
	f.SetCellValue(sheet, "D1", "Driver Phone")
	f.SetCellValue(sheet, "E1", "Status")
	f.SetCellValue(sheet, "F1", "Next Maintenance")

	for i, truck := range trucks {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), truck.TruckNumber)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), fmt.Sprintf("%.0f %s", truck.Capacity, truck.CapacityUnit))
		f.SetCellValue(sheet, fmt.Sprintf("C%d", i+2), truck.Driver)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", i+2), truck.DriverPhone)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", i+2), truck.Status)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", i+2), truck.NextMaintenanceDate.Format("2006-01-02"))
	}

	return sendExcel(ctx, f, "truck-status-report")
}
