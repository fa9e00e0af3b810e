package domain

import (
	"time"

	"github.com/travelbuff/TB-ConciergeService/pkg/types"
)

// BookingStatus represents the status of a consultation booking
type BookingStatus string

const (
	// StatusPending единственный статус, который порождает создание бронирования
	// Переходов статусов в текущей версии сервиса нет
	StatusPending BookingStatus = "pending"
)

// Booking represents a reserved consultation slot
// Инвариант подсистемы: не существует двух бронирований с одинаковой
// парой (Date, Time)
type Booking struct {
	ID              string
	Name            string
	Email           string
	Phone           *string
	ServiceInterest string
	Date            string           // Календарная дата "YYYY-MM-DD", без таймзоны
	Time            types.TimeString // Время слота "HH:MM"
	Message         *string
	Status          BookingStatus
	CreatedAt       time.Time
}

// SlotKey возвращает ключ слота бронирования
func (b *Booking) SlotKey() string {
	return SlotKey(b.Date, b.Time)
}

// SlotKey строит ключ слота из даты и времени
// Ключ используется для сериализации конкурентных попыток бронирования
func SlotKey(date string, t types.TimeString) string {
	return date + ":" + t.String()
}
