package get_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/travelbuff/TB-ConciergeService/internal/domain"
	"github.com/travelbuff/TB-ConciergeService/pkg/types"
)

// UseCase use case получения доступности слотов на дату
//
// Доступность на дату = канонический набор времен минус времена,
// занятые существующими бронированиями. Канонический набор - внешний
// контракт с фронтендом и приходит из конфигурации, а не выводится из
// бронирований
type UseCase struct {
	bookingRepo BookingRepository
	timeSlots   []types.TimeString
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	timeSlots []types.TimeString,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		timeSlots:   timeSlots,
		logger:      logger,
	}
}

// Execute выполняет use case получения доступности
// Отражает состояние хранилища на момент вызова
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация даты
	if req.Date == "" {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidDate)
	}
	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		uc.logger.Warn("GetAvailability: invalid date %q: %v", req.Date, err)
		return nil, fmt.Errorf("%w: expected YYYY-MM-DD", ErrInvalidDate)
	}

	// 2. Читаем бронирования на дату
	bookings, err := uc.bookingRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get bookings for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	taken := make(map[types.TimeString]struct{}, len(bookings))
	for _, b := range bookings {
		taken[b.Time] = struct{}{}
	}

	// 3. Делим канонический набор на свободные и занятые
	available := make([]types.TimeString, 0, len(uc.timeSlots))
	booked := make([]types.TimeString, 0)

	for _, slot := range uc.timeSlots {
		if _, ok := taken[slot]; ok {
			booked = append(booked, slot)
		} else {
			available = append(available, slot)
		}
	}

	uc.logger.Info("GetAvailability: date=%s, available=%d, booked=%d",
		req.Date, len(available), len(booked))

	return &Response{
		Date:           req.Date,
		AvailableSlots: available,
		BookedSlots:    booked,
	}, nil
}
