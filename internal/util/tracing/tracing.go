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

// Package tracing provides optional OpenTelemetry instrumentation for the
// dispatch engine
package tracing

import (
	"context"
	"fmt"

	"github.com/asderix/papys/internal/config"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "papys"

// Flusher shuts down the tracer provider, flushing any buffered spans
type Flusher func(context.Context) error

// New returns a Tracer for the provided tracing configuration, or a nil
// Tracer when tracing is disabled
func New(conf *config.TracingConfig) (trace.Tracer, Flusher, error) {
	if conf == nil || !conf.Enabled {
		return nil, nil, nil
	}

	if conf.Exporter != "stdout" {
		return nil, nil, fmt.Errorf("unsupported trace exporter: %s", conf.Exporter)
	}

	exporter, err := stdouttrace.New()
	if err != nil {
		return nil, nil, err
	}

	sampler := sdktrace.ParentBased(sdktrace.TraceIDRatioBased(conf.SampleRate))
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sampler),
	)
	otel.SetTracerProvider(tp)

	return tp.Tracer(tracerName), tp.Shutdown, nil
}
