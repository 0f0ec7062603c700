package services

import (
	"regexp"
	"testing"
	"time"

	"inventory-app/apperr"
	"inventory-app/models"
	"inventory-app/types"

	"gorm.io/gorm"
)

func newScheduler(db *gorm.DB, allowSameDay bool) *DeliveryService {
	return NewDeliveryService(db, allowSameDay, nil)
}

var deliveryDate = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func TestCreateDelivery_SchedulesAndDecrementsStock(t *testing.T) {
	db := newTestDB(t)
	chemical := seedChemical(t, db, "H2SO4", 100, 20)
	truck := seedTruck(t, db, "T1", "Budi")

	svc := newScheduler(db, false)
	delivery, err := svc.Create(CreateDeliveryInput{
		DeliveryDate:    deliveryDate,
		ChemicalStockID: chemical.ID,
		Quantity:        30,
		Destination:     "Bandung",
		TruckIDs:        []types.SnowflakeID{truck.ID},
	})
	if err != nil {
		t.Fatalf("create delivery: %v", err)
	}

	if delivery.Status != models.DeliveryStatusScheduled {
		t.Errorf("status = %q, want Scheduled", delivery.Status)
	}
	if matched := regexp.MustCompile(`^DLV-\d{14}$`).MatchString(delivery.DeliveryNumber); !matched {
		t.Errorf("delivery number %q does not match DLV-<14 digits>", delivery.DeliveryNumber)
	}
	if delivery.ChemicalName != "H2SO4" || delivery.Unit != "Kg" {
		t.Errorf("snapshot = %q/%q, want H2SO4/Kg", delivery.ChemicalName, delivery.Unit)
	}

	if len(delivery.TruckAssignments) != 1 {
		t.Fatalf("assignments = %d, want 1", len(delivery.TruckAssignments))
	}
	ta := delivery.TruckAssignments[0]
	if ta.TruckID != truck.ID || ta.TruckNumber != "T1" || ta.Driver != "Budi" {
		t.Errorf("assignment snapshot = %+v", ta)
	}
	if ta.Status != models.AssignmentStatusAssigned {
		t.Errorf("assignment status = %q, want Assigned", ta.Status)
	}

	updated, err := NewChemicalService(db).GetByID(chemical.ID)
	if err != nil {
		t.Fatalf("reload chemical: %v", err)
	}
	if updated.Quantity != 70 {
		t.Errorf("stock after delivery = %d, want 70", updated.Quantity)
	}
}

func TestCreateDelivery_InsufficientStock(t *testing.T) {
	db := newTestDB(t)
	chemical := seedChemical(t, db, "NaOH", 10, 2)

	svc := newScheduler(db, false)
	_, err := svc.Create(CreateDeliveryInput{
		DeliveryDate:    deliveryDate,
		ChemicalStockID: chemical.ID,
		Quantity:        11,
		Destination:     "Jakarta",
	})
	if !apperr.IsInvalidRequest(err) {
		t.Fatalf("err = %v, want invalid request", err)
	}

	// Nothing written on this path.
	var count int64
	db.Model(&models.Delivery{}).Count(&count)
	if count != 0 {
		t.Errorf("delivery count = %d, want 0", count)
	}
	updated, _ := NewChemicalService(db).GetByID(chemical.ID)
	if updated.Quantity != 10 {
		t.Errorf("stock = %d, want 10 (unchanged)", updated.Quantity)
	}
}

func TestCreateDelivery_ExactStockAllowed(t *testing.T) {
	db := newTestDB(t)
	chemical := seedChemical(t, db, "HCl", 25, 5)

	svc := newScheduler(db, false)
	if _, err := svc.Create(CreateDeliveryInput{
		DeliveryDate:    deliveryDate,
		ChemicalStockID: chemical.ID,
		Quantity:        25,
		Destination:     "Surabaya",
	}); err != nil {
		t.Fatalf("create delivery: %v", err)
	}

	updated, _ := NewChemicalService(db).GetByID(chemical.ID)
	if updated.Quantity != 0 {
		t.Errorf("stock = %d, want 0", updated.Quantity)
	}
}

func TestCreateDelivery_ChemicalNotFound(t *testing.T) {
	db := newTestDB(t)

	svc := newScheduler(db, false)
	_, err := svc.Create(CreateDeliveryInput{
		DeliveryDate:    deliveryDate,
		ChemicalStockID: 12345,
		Quantity:        1,
		Destination:     "Jakarta",
	})
	if !apperr.IsNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestCreateDelivery_SameDayConflictForbidden(t *testing.T) {
	db := newTestDB(t)
	chemical := seedChemical(t, db, "H2SO4", 100, 20)
	truck := seedTruck(t, db, "T1", "Budi")

	svc := newScheduler(db, false)
	input := CreateDeliveryInput{
		DeliveryDate:    deliveryDate,
		ChemicalStockID: chemical.ID,
		Quantity:        10,
		Destination:     "Bandung",
		TruckIDs:        []types.SnowflakeID{truck.ID},
	}

	if _, err := svc.Create(input); err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err := svc.Create(input)
	if !apperr.IsInvalidRequest(err) {
		t.Fatalf("second create err = %v, want invalid request", err)
	}
	if !regexp.MustCompile(truck.ID.String()).MatchString(err.Error()) {
		t.Errorf("error %q does not name truck %s", err.Error(), truck.ID)
	}

	// The rejected creation must not have consumed stock.
	updated, _ := NewChemicalService(db).GetByID(chemical.ID)
	if updated.Quantity != 90 {
		t.Errorf("stock = %d, want 90", updated.Quantity)
	}
}

func TestCreateDelivery_SameDayConflictAllowedByPolicy(t *testing.T) {
	db := newTestDB(t)
	chemical := seedChemical(t, db, "H2SO4", 100, 20)
	truck := seedTruck(t, db, "T1", "Budi")

	svc := newScheduler(db, true)
	input := CreateDeliveryInput{
		DeliveryDate:    deliveryDate,
		ChemicalStockID: chemical.ID,
		Quantity:        10,
		Destination:     "Bandung",
		TruckIDs:        []types.SnowflakeID{truck.ID},
	}

	first, err := svc.Create(input)
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	second, err := svc.Create(input)
	if err != nil {
		t.Fatalf("second create: %v", err)
	}

	for _, d := range []*models.Delivery{first, second} {
		if len(d.TruckAssignments) != 1 || d.TruckAssignments[0].TruckID != truck.ID {
			t.Errorf("delivery %s missing assignment for truck %s", d.DeliveryNumber, truck.ID)
		}
	}
}

func TestCreateDelivery_CancelledDeliveryDoesNotConflict(t *testing.T) {
	db := newTestDB(t)
	chemical := seedChemical(t, db, "H2SO4", 100, 20)
	truck := seedTruck(t, db, "T1", "Budi")

	svc := newScheduler(db, false)
	input := CreateDeliveryInput{
		DeliveryDate:    deliveryDate,
		ChemicalStockID: chemical.ID,
		Quantity:        10,
		Destination:     "Bandung",
		TruckIDs:        []types.SnowflakeID{truck.ID},
	}

	first, err := svc.Create(input)
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.UpdateStatus(first.ID, models.DeliveryStatusCancelled); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	if _, err := svc.Create(input); err != nil {
		t.Fatalf("create after cancellation: %v", err)
	}
}

func TestCreateDelivery_DifferentDayNoConflict(t *testing.T) {
	db := newTestDB(t)
	chemical := seedChemical(t, db, "H2SO4", 100, 20)
	truck := seedTruck(t, db, "T1", "Budi")

	svc := newScheduler(db, false)
	input := CreateDeliveryInput{
		DeliveryDate:    deliveryDate,
		ChemicalStockID: chemical.ID,
		Quantity:        10,
		Destination:     "Bandung",
		TruckIDs:        []types.SnowflakeID{truck.ID},
	}
	if _, err := svc.Create(input); err != nil {
		t.Fatalf("first create: %v", err)
	}

	input.DeliveryDate = deliveryDate.AddDate(0, 0, 1)
	if _, err := svc.Create(input); err != nil {
		t.Fatalf("next-day create: %v", err)
	}
}

func TestCreateDelivery_UnknownTruckSkipped(t *testing.T) {
	db := newTestDB(t)
	chemical := seedChemical(t, db, "H2SO4", 100, 20)
	truck := seedTruck(t, db, "T1", "Budi")

	svc := newScheduler(db, false)
	delivery, err := svc.Create(CreateDeliveryInput{
		DeliveryDate:    deliveryDate,
		ChemicalStockID: chemical.ID,
		Quantity:        10,
		Destination:     "Bandung",
		TruckIDs:        []types.SnowflakeID{truck.ID, 999999},
	})
	if err != nil {
		t.Fatalf("create delivery: %v", err)
	}

	// Ids that do not resolve to a truck produce no assignment and no error.
	if len(delivery.TruckAssignments) != 1 {
		t.Fatalf("assignments = %d, want 1", len(delivery.TruckAssignments))
	}
	if delivery.TruckAssignments[0].TruckID != truck.ID {
		t.Errorf("assignment truck = %s, want %s", delivery.TruckAssignments[0].TruckID, truck.ID)
	}
}

func TestUpdateStatus_OnDeliveryGuard(t *testing.T) {
	db := newTestDB(t)
	chemical := seedChemical(t, db, "H2SO4", 100, 20)
	truck := seedTruck(t, db, "T1", "Budi")

	// Both deliveries share the truck and the date; created under the
	// permissive policy.
	allow := newScheduler(db, true)
	input := CreateDeliveryInput{
		DeliveryDate:    deliveryDate,
		ChemicalStockID: chemical.ID,
		Quantity:        10,
		Destination:     "Bandung",
		TruckIDs:        []types.SnowflakeID{truck.ID},
	}
	a, err := allow.Create(input)
	if err != nil {
		t.Fatalf("create a: %v", err)
	}
	b, err := allow.Create(input)
	if err != nil {
		t.Fatalf("create b: %v", err)
	}

	if _, err := allow.UpdateStatus(b.ID, models.DeliveryStatusOnDelivery); err != nil {
		t.Fatalf("b -> OnDelivery: %v", err)
	}

	// The guard is unconditional: it rejects under either policy setting.
	for _, svc := range []*DeliveryService{allow, newScheduler(db, false)} {
		_, err := svc.UpdateStatus(a.ID, models.DeliveryStatusOnDelivery)
		if !apperr.IsInvalidRequest(err) {
			t.Fatalf("a -> OnDelivery err = %v, want invalid request (allowSameDay=%v)", err, svc.AllowSameDayMultiple)
		}
	}

	// Once b completes, a may go out.
	if _, err := allow.UpdateStatus(b.ID, models.DeliveryStatusCompleted); err != nil {
		t.Fatalf("b -> Completed: %v", err)
	}
	if _, err := allow.UpdateStatus(a.ID, models.DeliveryStatusOnDelivery); err != nil {
		t.Fatalf("a -> OnDelivery after b completed: %v", err)
	}
}

func TestUpdateStatus_NoTransitionGraph(t *testing.T) {
	db := newTestDB(t)
	chemical := seedChemical(t, db, "H2SO4", 100, 20)

	svc := newScheduler(db, false)
	delivery, err := svc.Create(CreateDeliveryInput{
		DeliveryDate:    deliveryDate,
		ChemicalStockID: chemical.ID,
		Quantity:        10,
		Destination:     "Bandung",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Any status value is accepted in any order; there is no enforced graph.
	for _, status := range []string{
		models.DeliveryStatusCompleted,
		models.DeliveryStatusScheduled,
		models.DeliveryStatusCancelled,
		models.DeliveryStatusOnDelivery,
	} {
		updated, err := svc.UpdateStatus(delivery.ID, status)
		if err != nil {
			t.Fatalf("set status %s: %v", status, err)
		}
		if updated.Status != status {
			t.Errorf("status = %q, want %q", updated.Status, status)
		}
	}
}

func TestUpdateStatus_NotFound(t *testing.T) {
	db := newTestDB(t)

	svc := newScheduler(db, false)
	_, err := svc.UpdateStatus(424242, models.DeliveryStatusCompleted)
	if !apperr.IsNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestDelete_DoesNotRestoreStock(t *testing.T) {
	db := newTestDB(t)
	chemical := seedChemical(t, db, "H2SO4", 100, 20)
	truck := seedTruck(t, db, "T1", "Budi")

	svc := newScheduler(db, false)
	delivery, err := svc.Create(CreateDeliveryInput{
		DeliveryDate:    deliveryDate,
		ChemicalStockID: chemical.ID,
		Quantity:        30,
		Destination:     "Bandung",
		TruckIDs:        []types.SnowflakeID{truck.ID},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	deleted, err := svc.Delete(delivery.ID)
	if err != nil || !deleted {
		t.Fatalf("delete = %v, %v", deleted, err)
	}

	updated, _ := NewChemicalService(db).GetByID(chemical.ID)
	if updated.Quantity != 70 {
		t.Errorf("stock = %d, want 70 (deletion is not a rollback)", updated.Quantity)
	}

	var assignments int64
	db.Model(&models.TruckAssignment{}).Where("delivery_id = ?", delivery.ID).Count(&assignments)
	if assignments != 0 {
		t.Errorf("orphan assignments = %d, want 0", assignments)
	}

	deleted, err = svc.Delete(delivery.ID)
	if err != nil || deleted {
		t.Errorf("second delete = %v, %v, want false, nil", deleted, err)
	}
}

func TestGetByDateRange_InclusiveBounds(t *testing.T) {
	db := newTestDB(t)
	chemical := seedChemical(t, db, "H2SO4", 100, 20)

	svc := newScheduler(db, false)
	dates := []time.Time{
		time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
	}
	for _, date := range dates {
		if _, err := svc.Create(CreateDeliveryInput{
			DeliveryDate:    date,
			ChemicalStockID: chemical.ID,
			Quantity:        5,
			Destination:     "Bandung",
		}); err != nil {
			t.Fatalf("create for %s: %v", date, err)
		}
	}

	deliveries, err := svc.GetByDateRange(dates[1], dates[2])
	if err != nil {
		t.Fatalf("date range: %v", err)
	}
	if len(deliveries) != 2 {
		t.Fatalf("deliveries in range = %d, want 2", len(deliveries))
	}
	for _, d := range deliveries {
		if d.DeliveryDate.Before(dates[1]) || d.DeliveryDate.After(dates[2]) {
			t.Errorf("delivery %s outside range: %s", d.DeliveryNumber, d.DeliveryDate)
		}
	}
}

func TestSnapshot_SurvivesChemicalDeletion(t *testing.T) {
	db := newTestDB(t)
	chemical := seedChemical(t, db, "H2SO4", 100, 20)

	svc := newScheduler(db, false)
	delivery, err := svc.Create(CreateDeliveryInput{
		DeliveryDate:    deliveryDate,
		ChemicalStockID: chemical.ID,
		Quantity:        10,
		Destination:     "Bandung",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := NewChemicalService(db).Delete(chemical.ID); err != nil {
		t.Fatalf("delete chemical: %v", err)
	}

	reloaded, err := svc.GetByID(delivery.ID)
	if err != nil {
		t.Fatalf("reload delivery: %v", err)
	}
	if reloaded.ChemicalName != "H2SO4" || reloaded.Unit != "Kg" {
		t.Errorf("snapshot after deletion = %q/%q, want H2SO4/Kg", reloaded.ChemicalName, reloaded.Unit)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	db := newTestDB(t)

	svc := newScheduler(db, false)
	if _, err := svc.GetByID(31337); !apperr.IsNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}
}
