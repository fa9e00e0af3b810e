package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/travelbuff/TB-ConciergeService/internal/domain"
	bookingRepo "github.com/travelbuff/TB-ConciergeService/internal/infra/storage/booking"
)

// UseCase use case создания бронирования консультации
//
// Ядро подсистемы бронирования: атомарный check-and-reserve слота.
// Последовательность "прочитать бронирования на дату - решить -
// записать" выполняется под клеймом на ключ слота (SlotGuard), поэтому
// из N конкурентных попыток занять один слот успешной будет ровно одна
type UseCase struct {
	bookingRepo BookingRepository
	slotGuard   SlotGuard
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slotGuard SlotGuard,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		slotGuard:   slotGuard,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
// Возвращает ErrSlotTaken, если слот (дата, время) уже занят; запись
// при этом не создается, и слот не остается заблокированным - клейм
// освобождается на любом пути выхода
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: name=%s, service=%s, date=%s, time=%s",
		req.Name, req.ServiceInterest, req.Date, req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	slotKey := domain.SlotKey(req.Date, req.Time)

	// Переменная для хранения результата
	var result *domain.Booking

	// 2. Критическая секция по ключу слота: чтение занятости и вставка
	// выполняются как единое целое относительно других претендентов на
	// тот же слот. Попытки на другие слоты не блокируются
	err := uc.slotGuard.Do(ctx, slotKey, func(guardCtx context.Context) error {
		// 2.1. Читаем существующие бронирования на эту дату
		existing, err := uc.bookingRepo.GetByDate(guardCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings for date=%s: %v", req.Date, err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 2.2. Проверяем занятость слота
		for _, b := range existing {
			if b.Time == req.Time {
				return ErrSlotTaken
			}
		}

		// 2.3. Создаем бронирование со статусом pending
		booking := &domain.Booking{
			Name:            req.Name,
			Email:           req.Email,
			Phone:           req.Phone,
			ServiceInterest: req.ServiceInterest,
			Date:            req.Date,
			Time:            req.Time,
			Message:         req.Message,
			Status:          domain.StatusPending,
		}

		// 2.4. Сохраняем; хранилище присваивает ID и CreatedAt и само
		// перепроверяет занятость слота (страховка инварианта при
		// любой реализации SlotGuard)
		created, err := uc.bookingRepo.Create(guardCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				return ErrSlotTaken
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotTaken) {
			uc.logger.Warn("CreateBooking: slot already booked: date=%s, time=%s", req.Date, req.Time)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s, slot=%s", result.ID, slotKey)

	return fromDomain(result), nil
}
