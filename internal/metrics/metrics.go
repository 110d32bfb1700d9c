// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics collects and exposes Prometheus metrics for store traffic,
// the search cache and CSV exports.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Operation labels for upstream calls.
const (
	OperationSearch  = "search"
	OperationReviews = "reviews"
)

// Outcome labels for upstream calls.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

//go:generate mockgen -source=metrics.go -destination=../mock/metrics_mock.go -package=mock

// MetricsCollector is the recording side used by the service layer.
type MetricsCollector interface {
	RecordCacheHit()
	RecordCacheMiss()
	RecordUpstreamCall(operation, outcome string, duration time.Duration)
	RecordReviewsFetched(count int)
	RecordExport(rows int)
}

// Collector is the Prometheus implementation of [MetricsCollector].
type Collector struct {
	cacheHits        prometheus.Counter
	cacheMisses      prometheus.Counter
	upstreamCalls    *prometheus.CounterVec
	upstreamLatency  *prometheus.HistogramVec
	reviewsFetched   prometheus.Counter
	exports          prometheus.Counter
	exportedRowsHist prometheus.Histogram
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "review_fetcher_search_cache_hits_total",
			Help: "Searches answered from the in-memory cache.",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "review_fetcher_search_cache_misses_total",
			Help: "Searches that required a store request.",
		}),
		upstreamCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "review_fetcher_upstream_requests_total",
			Help: "Store calls by operation and outcome.",
		}, []string{"operation", "outcome"}),
		upstreamLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "review_fetcher_upstream_latency_seconds",
			Help:    "Store call latency in seconds, including pagination.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		reviewsFetched: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "review_fetcher_reviews_fetched_total",
			Help: "Reviews returned by the store.",
		}),
		exports: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "review_fetcher_exports_total",
			Help: "CSV files produced.",
		}),
		exportedRowsHist: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "review_fetcher_export_rows",
			Help:    "Rows per CSV export.",
			Buckets: prometheus.LinearBuckets(0, 50, 5),
		}),
	}

	reg.MustRegister(
		c.cacheHits,
		c.cacheMisses,
		c.upstreamCalls,
		c.upstreamLatency,
		c.reviewsFetched,
		c.exports,
		c.exportedRowsHist,
	)

	return c
}

func (c *Collector) RecordCacheHit() {
	c.cacheHits.Inc()
}

func (c *Collector) RecordCacheMiss() {
	c.cacheMisses.Inc()
}

// RecordUpstreamCall counts a store call and observes its latency.
func (c *Collector) RecordUpstreamCall(operation, outcome string, duration time.Duration) {
	c.upstreamCalls.WithLabelValues(operation, outcome).Inc()
	c.upstreamLatency.WithLabelValues(operation).Observe(duration.Seconds())
}

func (c *Collector) RecordReviewsFetched(count int) {
	c.reviewsFetched.Add(float64(count))
}

func (c *Collector) RecordExport(rows int) {
	c.exports.Inc()
	c.exportedRowsHist.Observe(float64(rows))
}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop returns a [MetricsCollector] that records nothing. The terminal client
// uses it since it exposes no scrape endpoint.
func Nop() MetricsCollector {
	return nopCollector{}
}

type nopCollector struct{}

func (nopCollector) RecordCacheHit() {}
func (nopCollector) RecordCacheMiss() {}
func (nopCollector) RecordUpstreamCall(string, string, time.Duration) {}
func (nopCollector) RecordReviewsFetched(int) {}
func (nopCollector) RecordExport(int) {}
