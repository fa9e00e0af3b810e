package domain

import "github.com/travelbuff/TB-ConciergeService/pkg/types"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Field validation constants (повторяют правила форм фронтенда)
const (
	MinNameLength    = 2
	MinMessageLength = 10
	MinRating        = 1
	MaxRating        = 5
)

// DefaultTimeSlots канонический набор времен для бронирования консультаций
// Внешний контракт с фронтендом: часовые отметки рабочего дня с перерывом
// на обед. Значение по умолчанию, переопределяется в config.toml
var DefaultTimeSlots = []types.TimeString{
	"09:00",
	"10:00",
	"11:00",
	"14:00",
	"15:00",
	"16:00",
}
