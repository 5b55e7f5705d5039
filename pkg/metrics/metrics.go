package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus collectors for the service
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	EngineTicksTotal    prometheus.Counter
	EquipmentByStatus   *prometheus.GaugeVec
	OverdueAlertsTotal  prometheus.Counter
	NotificationsTotal  *prometheus.CounterVec
	BookingsByStatus    *prometheus.GaugeVec
}

// New registers and returns the service metrics.
// serviceName is attached as a constant label to every collector.
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		EngineTicksTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "engine_ticks_total",
			Help:        "Total number of availability/overdue engine ticks",
			ConstLabels: constLabels,
		}),

		EquipmentByStatus: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "equipment_by_status",
			Help:        "Current number of equipment items per status",
			ConstLabels: constLabels,
		}, []string{"status"}),

		OverdueAlertsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "overdue_alerts_total",
			Help:        "Total number of overdue alerts dispatched",
			ConstLabels: constLabels,
		}),

		NotificationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "notifications_total",
			Help:        "Total number of notification transitions per status",
			ConstLabels: constLabels,
		}, []string{"status"}),

		BookingsByStatus: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "bookings_by_status",
			Help:        "Current number of bookings per status",
			ConstLabels: constLabels,
		}, []string{"status"}),
	}
}
