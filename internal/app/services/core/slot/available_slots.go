package slot

import "doctors-portal-service/internal/app/models"

// AvailableSlots returns every service with the slots booked for it removed.
//
// A booking counts against a service when its treatment equals the service name.
// Every inventory entry equal to a booked slot value is dropped; the rest keep
// their order and duplicates. A fully booked service is returned with an empty
// slot list. The inputs are not modified.
func AvailableSlots(services []models.Service, bookings []models.Booking) []models.Service {
	booked := make(map[string]map[string]struct{})
	for _, booking := range bookings {
		slots, ok := booked[booking.Treatment]
		if !ok {
			slots = make(map[string]struct{})
			booked[booking.Treatment] = slots
		}
		slots[booking.Slot] = struct{}{}
	}

	result := make([]models.Service, 0, len(services))
	for _, service := range services {
		available := service
		taken := booked[service.Name]

		available.Slots = make([]string, 0, len(service.Slots))
		for _, slot := range service.Slots {
			if _, isTaken := taken[slot]; isTaken {
				continue
			}
			available.Slots = append(available.Slots, slot)
		}
		result = append(result, available)
	}
	return result
}
