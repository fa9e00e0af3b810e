package get_availability

import "github.com/travelbuff/TB-ConciergeService/pkg/types"

// Request модель запроса доступности на дату
type Request struct {
	Date string // "2025-08-01"
}

// Response модель ответа с доступностью слотов на дату
// Порядок слотов в обоих списках повторяет канонический набор
type Response struct {
	Date           string
	AvailableSlots []types.TimeString
	BookedSlots    []types.TimeString
}
