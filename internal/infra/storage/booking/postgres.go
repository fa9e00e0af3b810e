package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/travelbuff/TB-ConciergeService/internal/domain"
	"github.com/travelbuff/TB-ConciergeService/pkg/psqlbuilder"
	"github.com/travelbuff/TB-ConciergeService/pkg/types"
)

// pgUniqueViolation код ошибки PostgreSQL для нарушения уникального индекса
const pgUniqueViolation = "23505"

var bookingColumns = []string{
	"id",
	"name",
	"email",
	"phone",
	"service_interest",
	"booking_date",
	"start_time",
	"message",
	"status",
	"created_at",
}

// PostgresRepository хранилище бронирований в PostgreSQL
//
// Инвариант "один слот - одно бронирование" обеспечивает уникальный
// индекс (booking_date, start_time): конкурентная вставка в занятый
// слот завершается нарушением индекса, которое транслируется в
// ErrSlotTaken
type PostgresRepository struct {
	db DBExecutor
}

// NewPostgresRepository создает новое PostgreSQL хранилище бронирований
func NewPostgresRepository(db DBExecutor) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create сохраняет новое бронирование
// Возвращает ErrSlotTaken при нарушении уникальности слота
func (r *PostgresRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	id := uuid.NewString()

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"name",
			"email",
			"phone",
			"service_interest",
			"booking_date",
			"start_time",
			"message",
			"status",
		).
		Values(
			id,
			booking.Name,
			booking.Email,
			booking.Phone,
			booking.ServiceInterest,
			booking.Date,
			booking.Time.String(),
			booking.Message,
			booking.Status,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	stored := *booking
	stored.ID = id
	stored.CreatedAt = createdAt.Time

	return &stored, nil
}

// GetAll возвращает все бронирования, новые первыми
func (r *PostgresRepository) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetByDate возвращает бронирования на дату, отсортированные по времени слота
func (r *PostgresRepository) GetByDate(ctx context.Context, date string) ([]*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"booking_date": date}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// IsSlotTaken проверяет, занят ли слот (дата, время)
func (r *PostgresRepository) IsSlotTaken(ctx context.Context, date string, t string) (bool, error) {
	query, args, err := psqlbuilder.Select("1").
		From("bookings").
		Where(squirrel.Eq{"booking_date": date, "start_time": t}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: IsSlotTaken - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: IsSlotTaken - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *PostgresRepository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var bookingDate time.Time
		var startTime string
		var createdAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.Name,
			&booking.Email,
			&booking.Phone,
			&booking.ServiceInterest,
			&bookingDate,
			&startTime,
			&booking.Message,
			&booking.Status,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.Date = bookingDate.Format(domain.DateFormat)
		booking.Time = types.TimeString(startTime)
		booking.CreatedAt = createdAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
