/*
 * Copyright 2024 The Papys Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package metrics provides prometheus instrumentation for the Papys engine
package metrics

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/asderix/papys/internal/config"
	tl "github.com/asderix/papys/internal/util/log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	metricNamespace    = "papys"
	frontendSubsystem  = "frontend"
	pathCacheSubsystem = "pathcache"
)

// Default histogram buckets used by papys
var defaultBuckets = []float64{0.05, 0.1, 0.5, 1, 5, 10, 20}

// FrontendRequestStatus is a Counter of front end requests that have been processed with their status
var FrontendRequestStatus *prometheus.CounterVec

// FrontendRequestDuration is a histogram that tracks the time it takes to dispatch a request
var FrontendRequestDuration *prometheus.HistogramVec

// PathCacheEvents is a Counter of events (hit, miss, clear) occurring on the path cache
var PathCacheEvents *prometheus.CounterVec

// PathCacheObjects is a Gauge representing the number of resolutions held in the path cache
var PathCacheObjects *prometheus.GaugeVec

var onceInit sync.Once

// Init initializes the instrumented metrics
func Init() {
	onceInit.Do(registerMetrics)
}

func registerMetrics() {
	FrontendRequestStatus = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Subsystem: frontendSubsystem,
			Name:      "requests_total",
			Help:      "Count of front end requests handled by Papys",
		},
		[]string{"method", "path", "http_status"},
	)

	FrontendRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricNamespace,
			Subsystem: frontendSubsystem,
			Name:      "requests_duration_seconds",
			Help:      "Histogram of front end request durations handled by Papys",
			Buckets:   defaultBuckets,
		},
		[]string{"method", "path", "http_status"},
	)

	PathCacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Subsystem: pathCacheSubsystem,
			Name:      "events_total",
			Help:      "Count of events occurring on the Papys path cache",
		},
		[]string{"method", "event"},
	)

	PathCacheObjects = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: metricNamespace,
			Subsystem: pathCacheSubsystem,
			Name:      "objects",
			Help:      "Gauge of resolved paths held in the Papys path cache",
		},
		[]string{"method"},
	)

	prometheus.MustRegister(FrontendRequestStatus)
	prometheus.MustRegister(FrontendRequestDuration)
	prometheus.MustRegister(PathCacheEvents)
	prometheus.MustRegister(PathCacheObjects)
}

// ListenAndServe starts the metrics listener endpoint on the configured port
func ListenAndServe(conf *config.MetricsConfig, logger *tl.Logger) {
	if conf == nil || conf.ListenPort <= 0 {
		return
	}
	logger.Info("metrics http endpoint starting",
		tl.Pairs{"address": conf.ListenAddress, "port": fmt.Sprintf("%d", conf.ListenPort)})
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(
			fmt.Sprintf("%s:%d", conf.ListenAddress, conf.ListenPort), mux); err != nil {
			logger.Error("unable to start metrics http server",
				tl.Pairs{"detail": err.Error()})
		}
	}()
}
