package get_availability

import (
	getAvailability "github.com/travelbuff/TB-ConciergeService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date           string   `json:"date"`
	AvailableSlots []string `json:"availableSlots"`
	BookedSlots    []string `json:"bookedSlots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	available := make([]string, 0, len(resp.AvailableSlots))
	for _, slot := range resp.AvailableSlots {
		available = append(available, slot.String())
	}

	booked := make([]string, 0, len(resp.BookedSlots))
	for _, slot := range resp.BookedSlots {
		booked = append(booked, slot.String())
	}

	return &AvailabilityResponse{
		Date:           resp.Date,
		AvailableSlots: available,
		BookedSlots:    booked,
	}
}
