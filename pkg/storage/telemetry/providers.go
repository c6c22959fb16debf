// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package telemetry

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Providers are SDK meter and tracer providers that report to a logger
// instead of an exporter. The CLI uses them so a single command can show
// what it did to the store.
type Providers struct {
	MeterProvider  *sdkmetric.MeterProvider
	TracerProvider *sdktrace.TracerProvider

	reader *sdkmetric.ManualReader
	logger *slog.Logger
}

// NewLoggingProviders creates providers for serviceName. Finished spans are
// logged at debug level; Shutdown logs the collected operation counts.
func NewLoggingProviders(serviceName string, logger *slog.Logger) *Providers {
	res := resource.NewSchemaless(attribute.String("service.name", serviceName))
	reader := sdkmetric.NewManualReader()

	return &Providers{
		MeterProvider: sdkmetric.NewMeterProvider(
			sdkmetric.WithReader(reader),
			sdkmetric.WithResource(res),
		),
		TracerProvider: sdktrace.NewTracerProvider(
			sdktrace.WithResource(res),
			sdktrace.WithSpanProcessor(logSpanProcessor{logger: logger}),
		),
		reader: reader,
		logger: logger,
	}
}

// Shutdown logs the operation counters and stops both providers.
func (p *Providers) Shutdown(ctx context.Context) error {
	var rm metricdata.ResourceMetrics
	if err := p.reader.Collect(ctx, &rm); err != nil {
		p.logger.Warn("failed to collect store metrics", "error", err)
	} else {
		p.logSums(rm)
	}

	return errors.Join(
		p.TracerProvider.Shutdown(ctx),
		p.MeterProvider.Shutdown(ctx),
	)
}

func (p *Providers) logSums(rm metricdata.ResourceMetrics) {
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				store, _ := dp.Attributes.Value(attrStore)
				op, _ := dp.Attributes.Value(attrOperation)
				p.logger.Debug(m.Name,
					"store", store.AsString(), "operation", op.AsString(), "count", dp.Value)
			}
		}
	}
}

// logSpanProcessor logs every finished span.
type logSpanProcessor struct {
	logger *slog.Logger
}

func (logSpanProcessor) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

func (l logSpanProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	args := []any{"duration", s.EndTime().Sub(s.StartTime())}
	if s.Status().Description != "" {
		args = append(args, "error", s.Status().Description)
	}
	l.logger.Debug("span "+s.Name(), args...)
}

func (logSpanProcessor) Shutdown(context.Context) error   { return nil }
func (logSpanProcessor) ForceFlush(context.Context) error { return nil }
