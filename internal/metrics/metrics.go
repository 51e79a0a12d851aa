package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewOrdersCreatedTotal returns a Prometheus counter for successfully created orders
func NewOrdersCreatedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "courier_orders_created_total",
		Help: "Total number of courier orders created via the creation routine",
	})
}

// NewStatusUpdatesTotal returns a Prometheus counter for delegated status updates
func NewStatusUpdatesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "courier_status_updates_total",
		Help: "Total number of status updates delegated to the database routine",
	})
}

// NewReportsServedTotal returns a Prometheus counter vector for served reports by kind
func NewReportsServedTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "courier_reports_served_total",
		Help: "Total number of report queries served",
	}, []string{"report"})
}

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewEventPublishRetriesTotal returns a Prometheus counter for retry attempts of the status event publisher
func NewEventPublishRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "event_publish_retries_total",
		Help: "Total number of retry attempts performed by the status event publisher",
	})
}
