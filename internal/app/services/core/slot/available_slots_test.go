package slot

import (
	"doctors-portal-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []models.Service {
	return []models.Service{
		{ID: "s1", Name: "Dental", Slots: []string{"8:00 AM", "9:00 AM", "10:00 AM"}},
		{ID: "s2", Name: "Eye Care", Slots: []string{"9:00 AM", "11:00 AM"}},
	}
}

func TestAvailableSlots_NoBookingsReturnsFullInventory(t *testing.T) {
	catalog := testCatalog()

	result := AvailableSlots(catalog, nil)

	assert.Equal(t, catalog, result)
}

func TestAvailableSlots_RemovesOnlyMatchingTreatment(t *testing.T) {
	bookings := []models.Booking{
		{Treatment: "Dental", Date: "2023-01-05", Patient: "a@x.com", Slot: "9:00 AM"},
	}

	result := AvailableSlots(testCatalog(), bookings)

	require.Len(t, result, 2)
	assert.Equal(t, []string{"8:00 AM", "10:00 AM"}, result[0].Slots)
	assert.Equal(t, []string{"9:00 AM", "11:00 AM"}, result[1].Slots, "other services keep the same slot label")
}

func TestAvailableSlots_FullyBookedServiceIsKeptWithEmptySlots(t *testing.T) {
	bookings := []models.Booking{
		{Treatment: "Eye Care", Patient: "a@x.com", Slot: "9:00 AM"},
		{Treatment: "Eye Care", Patient: "b@x.com", Slot: "11:00 AM"},
	}

	result := AvailableSlots(testCatalog(), bookings)

	require.Len(t, result, 2)
	assert.Equal(t, "Eye Care", result[1].Name)
	assert.NotNil(t, result[1].Slots)
	assert.Empty(t, result[1].Slots)
}

func TestAvailableSlots_PreservesOrderAndInventoryDuplicates(t *testing.T) {
	catalog := []models.Service{
		{Name: "Dental", Slots: []string{"10:00 AM", "8:00 AM", "10:00 AM", "9:00 AM", "8:00 AM"}},
	}
	bookings := []models.Booking{{Treatment: "Dental", Slot: "9:00 AM"}}

	result := AvailableSlots(catalog, bookings)

	assert.Equal(t, []string{"10:00 AM", "8:00 AM", "10:00 AM", "8:00 AM"}, result[0].Slots)
}

func TestAvailableSlots_BookedValueRemovesEveryCopy(t *testing.T) {
	catalog := []models.Service{
		{Name: "Dental", Slots: []string{"8:00 AM", "8:00 AM", "9:00 AM"}},
	}
	bookings := []models.Booking{{Treatment: "Dental", Slot: "8:00 AM"}}

	result := AvailableSlots(catalog, bookings)

	assert.Equal(t, []string{"9:00 AM"}, result[0].Slots)
}

func TestAvailableSlots_IgnoresUnknownTreatmentsAndSlots(t *testing.T) {
	bookings := []models.Booking{
		{Treatment: "Cardiology", Slot: "9:00 AM"},
		{Treatment: "Dental", Slot: "7:00 PM"},
		{Treatment: "dental", Slot: "8:00 AM"},
	}

	result := AvailableSlots(testCatalog(), bookings)

	assert.Equal(t, testCatalog(), result)
}

func TestAvailableSlots_DoesNotMutateInputs(t *testing.T) {
	catalog := testCatalog()
	bookings := []models.Booking{{Treatment: "Dental", Slot: "8:00 AM"}}

	_ = AvailableSlots(catalog, bookings)

	assert.Equal(t, testCatalog(), catalog)
	assert.Equal(t, []models.Booking{{Treatment: "Dental", Slot: "8:00 AM"}}, bookings)
}

func TestAvailableSlots_IsIdempotent(t *testing.T) {
	bookings := []models.Booking{{Treatment: "Dental", Slot: "8:00 AM"}}

	first := AvailableSlots(testCatalog(), bookings)
	second := AvailableSlots(testCatalog(), bookings)

	assert.Equal(t, first, second)
}

func TestAvailableSlots_EmptyCatalog(t *testing.T) {
	result := AvailableSlots(nil, []models.Booking{{Treatment: "Dental", Slot: "8:00 AM"}})

	assert.NotNil(t, result)
	assert.Empty(t, result)
}
