package booking

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/travelbuff/TB-ConciergeService/internal/domain"
)

// MemoryRepository процессное in-memory хранилище бронирований
//
// Потокобезопасность: все обращения идут под RWMutex, наружу отдаются
// только копии записей, поэтому читатели никогда не видят частично
// записанное бронирование. Вставка перепроверяет занятость слота под
// write-блокировкой - инвариант "один слот - одно бронирование"
// держится даже без внешней сериализации по ключу слота.
type MemoryRepository struct {
	mu       sync.RWMutex
	byID     map[string]domain.Booking
	bySlot   map[string]string // ключ слота -> ID бронирования
	ordering []string          // ID в порядке создания
}

// NewMemoryRepository создает новое in-memory хранилище бронирований
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:   make(map[string]domain.Booking),
		bySlot: make(map[string]string),
	}
}

// Create сохраняет новое бронирование
// Возвращает ErrSlotTaken, если слот (дата, время) уже занят
// ID и CreatedAt присваиваются хранилищем
func (r *MemoryRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	slotKey := booking.SlotKey()
	if _, taken := r.bySlot[slotKey]; taken {
		return nil, ErrSlotTaken
	}

	stored := *booking
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now()

	r.byID[stored.ID] = stored
	r.bySlot[slotKey] = stored.ID
	r.ordering = append(r.ordering, stored.ID)

	result := stored
	return &result, nil
}

// GetAll возвращает все бронирования, новые первыми
func (r *MemoryRepository) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bookings := make([]*domain.Booking, 0, len(r.ordering))
	for i := len(r.ordering) - 1; i >= 0; i-- {
		b := r.byID[r.ordering[i]]
		bookings = append(bookings, &b)
	}

	return bookings, nil
}

// GetByDate возвращает бронирования на дату, отсортированные по времени слота
func (r *MemoryRepository) GetByDate(ctx context.Context, date string) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bookings := make([]*domain.Booking, 0)
	for _, id := range r.ordering {
		b := r.byID[id]
		if b.Date == date {
			bookings = append(bookings, &b)
		}
	}

	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].Time.IsBefore(bookings[j].Time)
	})

	return bookings, nil
}

// IsSlotTaken проверяет, занят ли слот (дата, время)
func (r *MemoryRepository) IsSlotTaken(ctx context.Context, date string, t string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, taken := r.bySlot[date+":"+t]
	return taken, nil
}
