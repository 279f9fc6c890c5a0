package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CartAddsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_cart_adds_total",
		Help: "Number of cart lines added",
	})

	CheckoutsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_checkouts_total",
		Help: "Number of orders placed",
	})

	CheckoutsFailedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_checkouts_failed_total",
		Help: "Number of failed checkouts by reason",
	}, []string{"reason"})

	OrdersCancelledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_orders_cancelled_total",
		Help: "Number of orders cancelled",
	})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_http_requests_total",
		Help: "Number of HTTP requests by route and status",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "storefront_http_request_duration_seconds",
		Help:    "HTTP request latency by route",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
)
