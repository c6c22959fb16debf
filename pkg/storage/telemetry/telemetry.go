// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package telemetry decorates the store interfaces with OpenTelemetry
// metrics and spans.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	oserrors "github.com/stacklok/oauthstore/pkg/errors"
)

const instrumentationName = "github.com/stacklok/oauthstore/pkg/storage"

// Metric names.
const (
	MetricOperations        = "oauthstore_store_operations"
	MetricErrors            = "oauthstore_store_errors"
	MetricOperationDuration = "oauthstore_store_operation_duration"
)

// Store names used in the store attribute.
const (
	StoreClients        = "clients"
	StoreOAuth1         = "oauth1"
	StoreRequestObjects = "request_objects"
)

var (
	attrStore     = attribute.Key("oauthstore.store")
	attrOperation = attribute.Key("oauthstore.operation")
	attrErrorType = attribute.Key("error.type")
)

// Decorator holds the instruments shared by every wrapped store.
type Decorator struct {
	tracer trace.Tracer

	operationsTotal   metric.Int64Counter
	errorsTotal       metric.Int64Counter
	operationDuration metric.Float64Histogram
}

// NewDecorator creates the instruments on the given providers.
func NewDecorator(meterProvider metric.MeterProvider, tracerProvider trace.TracerProvider) (*Decorator, error) {
	meter := meterProvider.Meter(instrumentationName)

	operationsTotal, err := meter.Int64Counter(
		MetricOperations,
		metric.WithDescription("Total number of store operations"))
	if err != nil {
		return nil, fmt.Errorf("failed to create operations counter: %w", err)
	}
	errorsTotal, err := meter.Int64Counter(
		MetricErrors,
		metric.WithDescription("Total number of failed store operations"))
	if err != nil {
		return nil, fmt.Errorf("failed to create errors counter: %w", err)
	}
	operationDuration, err := meter.Float64Histogram(
		MetricOperationDuration,
		metric.WithDescription("Duration of store operations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create operation duration histogram: %w", err)
	}

	return &Decorator{
		tracer:            tracerProvider.Tracer(instrumentationName),
		operationsTotal:   operationsTotal,
		errorsTotal:       errorsTotal,
		operationDuration: operationDuration,
	}, nil
}

// record starts a span for one store operation and counts it. The returned
// function must be deferred; it records the duration and, when *err is
// set, the error.
func (d *Decorator) record(ctx context.Context, store, operation string, err *error) (context.Context, func()) {
	attrs := []attribute.KeyValue{
		attrStore.String(store),
		attrOperation.String(operation),
	}

	ctx, span := d.tracer.Start(ctx, store+"."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)

	metricAttrs := metric.WithAttributes(attrs...)
	start := time.Now()
	d.operationsTotal.Add(ctx, 1, metricAttrs)

	return ctx, func() {
		d.operationDuration.Record(ctx, time.Since(start).Seconds(), metricAttrs)
		if err != nil && *err != nil {
			kind := errorKind(*err)
			d.errorsTotal.Add(ctx, 1, metric.WithAttributes(append(attrs, attrErrorType.String(kind))...))
			span.RecordError(*err)
			span.SetAttributes(attrErrorType.String(kind))
			span.SetStatus(codes.Error, (*err).Error())
		}
		span.End()
	}
}

func errorKind(err error) string {
	switch {
	case oserrors.IsAdmin(err):
		return oserrors.ErrAdmin
	case oserrors.IsStorage(err):
		return oserrors.ErrStorage
	default:
		return "other"
	}
}
