// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records API-level counters.
type Collector struct {
	httpStatus      *prometheus.CounterVec
	registrations   prometheus.Counter
	loginSuccess    prometheus.Counter
	loginFailure    prometheus.Counter
	bookingsCreated prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics on the registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "taxi_http_status_total",
			Help: "Responses by HTTP status code",
		}, []string{"status_code"}),
		registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "taxi_registrations_total",
			Help: "Successful user registrations",
		}),
		loginSuccess: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "taxi_login_success_total",
			Help: "Successful logins",
		}),
		loginFailure: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "taxi_login_failure_total",
			Help: "Rejected login attempts",
		}),
		bookingsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "taxi_bookings_created_total",
			Help: "Bookings created",
		}),
	}

	reg.MustRegister(
		c.httpStatus,
		c.registrations,
		c.loginSuccess,
		c.loginFailure,
		c.bookingsCreated,
	)

	return c
}

func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

func (c *Collector) RecordRegistration() {
	c.registrations.Inc()
}

func (c *Collector) RecordLoginSuccess() {
	c.loginSuccess.Inc()
}

func (c *Collector) RecordLoginFailure() {
	c.loginFailure.Inc()
}

func (c *Collector) RecordBookingCreated() {
	c.bookingsCreated.Inc()
}

// Handler returns the HTTP handler for Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
