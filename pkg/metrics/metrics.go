package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus-метрик сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	bookingsCreatedTotal      prometheus.Counter
	bookingSlotConflictsTotal prometheus.Counter
	notificationFailuresTotal prometheus.Counter
}

// New создает и регистрирует метрики в default registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests processed",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request processing duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		bookingsCreatedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Total number of successfully reserved booking slots",
			ConstLabels: constLabels,
		}),

		bookingSlotConflictsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "booking_slot_conflicts_total",
			Help:        "Total number of booking attempts rejected due to a taken slot",
			ConstLabels: constLabels,
		}),

		notificationFailuresTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "notification_failures_total",
			Help:        "Total number of failed email notification attempts",
			ConstLabels: constLabels,
		}),
	}
}

// ObserveHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// IncBookingCreated фиксирует успешное бронирование слота
func (m *Metrics) IncBookingCreated() {
	m.bookingsCreatedTotal.Inc()
}

// IncSlotConflict фиксирует отказ из-за занятого слота
func (m *Metrics) IncSlotConflict() {
	m.bookingSlotConflictsTotal.Inc()
}

// IncNotificationFailure фиксирует неудачную отправку уведомления
func (m *Metrics) IncNotificationFailure() {
	m.notificationFailuresTotal.Inc()
}
