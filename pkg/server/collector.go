/*
 * Copyright (c) 2022, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

type cacheStatsCollector struct {
	cache *ResultCache

	entries  *prometheus.Desc
	capacity *prometheus.Desc
}

func NewCacheStatsCollector(cache *ResultCache) prometheus.Collector {
	return &cacheStatsCollector{
		cache: cache,
		entries: prometheus.NewDesc(
			"clex_cache_entries",
			"Number of scan results held in the cache.",
			nil, nil,
		),
		capacity: prometheus.NewDesc(
			"clex_cache_capacity",
			"Maximum number of scan results the cache holds.",
			nil, nil,
		),
	}
}

// Describe implements Collector.
func (c *cacheStatsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.entries
	ch <- c.capacity
}

// Collect implements Collector.
func (c *cacheStatsCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(c.cache.Len()))
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(c.cache.Cap()))
}
