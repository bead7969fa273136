/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type MetricsStore interface {
	Registry() *prometheus.Registry
	RegisterCollector(c prometheus.Collector)
	Handler() http.Handler

	// Collection
	IncRequests(endpoint, code string)
	IncCache(result string)
	ObserveScanNS(t int64)
	AddTokens(n int)
	IncDiagnostics(kind string)
}

type metricsStore struct {
	registry    *prometheus.Registry
	Requests    *prometheus.CounterVec
	Cache       *prometheus.CounterVec
	ScanNS      prometheus.Histogram
	Tokens      prometheus.Counter
	Diagnostics *prometheus.CounterVec
}

var (
	EndpointLabel = "endpoint"
	CodeLabel     = "code"
	ResultLabel   = "result"
	KindLabel     = "kind"
)

func NewMetricsStore() MetricsStore {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(
			collectors.WithGoCollectorRuntimeMetrics(collectors.MetricsAll),
		),
	)

	buckets := []float64{}
	for i := 1; i < 20; i++ {
		buckets = append(buckets, float64(2*i*int(time.Millisecond)))
	}

	factory := promauto.With(reg)
	return &metricsStore{
		registry: reg,
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "clex_requests",
			Help: "Request counts per endpoint and status code",
		}, []string{EndpointLabel, CodeLabel}),
		Cache: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "clex_cache",
			Help: "Result cache lookups by outcome",
		}, []string{ResultLabel}),
		ScanNS: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "clex_scan_ns",
			Help:    "Time spent scanning a source text",
			Buckets: buckets,
		}),
		Tokens: factory.NewCounter(prometheus.CounterOpts{
			Name: "clex_tokens",
			Help: "The total number of tokens emitted",
		}),
		Diagnostics: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "clex_diagnostics",
			Help: "Diagnostics produced, by kind",
		}, []string{KindLabel}),
	}
}

func (ms *metricsStore) Registry() *prometheus.Registry {
	return ms.registry
}

func (ms *metricsStore) RegisterCollector(c prometheus.Collector) {
	ms.registry.MustRegister(c)
}

func (ms *metricsStore) Handler() http.Handler {
	return promhttp.HandlerFor(ms.Registry(), promhttp.HandlerOpts{Registry: ms.Registry()})
}

func (ms *metricsStore) IncRequests(endpoint, code string) {
	ms.Requests.With(prometheus.Labels{EndpointLabel: endpoint, CodeLabel: code}).Inc()
}

func (ms *metricsStore) IncCache(result string) {
	ms.Cache.With(prometheus.Labels{ResultLabel: result}).Inc()
}

func (ms *metricsStore) ObserveScanNS(t int64) {
	ms.ScanNS.Observe(float64(t))
}

func (ms *metricsStore) AddTokens(n int) {
	ms.Tokens.Add(float64(n))
}

func (ms *metricsStore) IncDiagnostics(kind string) {
	ms.Diagnostics.With(prometheus.Labels{KindLabel: kind}).Inc()
}
