package finder

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	noEvaluations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fipsfinder_evaluations_total",
		Help: "The total number of evaluated product listings",
	})
	noProductViews = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fipsfinder_product_views_total",
		Help: "The total number of product detail and category views",
	})
	noDegraded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fipsfinder_degraded_total",
		Help: "The total number of degraded results by failing source",
	}, []string{"source"})
	evaluationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "fipsfinder_evaluation_seconds",
		Help:    "Time spent evaluating a product listing",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14),
	})
	resultSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "fipsfinder_results",
		Help:    "Number of matching records per evaluation",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	})
)
