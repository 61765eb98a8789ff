package httpclient

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const scopeName = "github.com/kbukum/restkit/httpclient"

func tracer() trace.Tracer {
	return otel.Tracer(scopeName)
}

// instruments holds the OpenTelemetry metric instruments shared by all
// clients in the process. Created lazily against the global meter provider.
type instruments struct {
	requests metric.Int64Counter
	duration metric.Float64Histogram
}

var (
	instOnce sync.Once
	inst     instruments
)

func getInstruments() *instruments {
	instOnce.Do(func() {
		meter := otel.Meter(scopeName)

		if c, err := meter.Int64Counter(
			"http.client.requests",
			metric.WithDescription("Number of outbound HTTP requests"),
		); err == nil {
			inst.requests = c
		}

		if h, err := meter.Float64Histogram(
			"http.client.request.duration",
			metric.WithDescription("Duration of outbound HTTP requests"),
			metric.WithUnit("ms"),
		); err == nil {
			inst.duration = h
		}
	})
	return &inst
}

// recordRequest records one completed (or failed) request on the shared
// instruments. Instrument creation failures degrade to no-ops.
func recordRequest(ctx context.Context, clientName, method string, statusCode int, err error, d time.Duration) {
	in := getInstruments()

	status := "ok"
	if err != nil {
		status = "error"
	}
	attrs := metric.WithAttributes(
		attribute.String("client.name", clientName),
		attribute.String("http.request.method", method),
		attribute.Int("http.response.status_code", statusCode),
		attribute.String("status", status),
	)

	if in.requests != nil {
		in.requests.Add(ctx, 1, attrs)
	}
	if in.duration != nil {
		in.duration.Record(ctx, float64(d.Milliseconds()), attrs)
	}
}
