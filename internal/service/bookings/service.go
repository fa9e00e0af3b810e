package bookings

import (
	"context"
	"fmt"
	"time"

	"github.com/travelbuff/TB-ConciergeService/internal/domain"
)

// Service сервис чтения бронирований
// Создание бронирований идет через usecase create_booking; здесь только
// операции чтения, которым не нужна сериализация по ключу слота
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// ListBookings возвращает все бронирования, новые первыми
func (s *Service) ListBookings(ctx context.Context) ([]*domain.Booking, error) {
	bookings, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("ListBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBookings: fetched %d bookings", len(bookings))
	return bookings, nil
}

// GetByDate возвращает бронирования на дату, отсортированные по времени слота
func (s *Service) GetByDate(ctx context.Context, date string) ([]*domain.Booking, error) {
	if _, err := time.Parse(domain.DateFormat, date); err != nil {
		s.logger.Warn("GetByDate: invalid date %q: %v", date, err)
		return nil, fmt.Errorf("%w: expected YYYY-MM-DD", ErrInvalidDate)
	}

	bookings, err := s.bookingRepo.GetByDate(ctx, date)
	if err != nil {
		s.logger.Error("GetByDate: repository error for date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: GetByDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByDate: fetched %d bookings for date=%s", len(bookings), date)
	return bookings, nil
}
