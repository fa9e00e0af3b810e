package create_booking

import "errors"

var (
	// ErrSlotTaken возвращается, когда слот (дата, время) уже занят
	// Единственная доменная ошибка подсистемы бронирования
	ErrSlotTaken = errors.New("create_booking: time slot already booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
