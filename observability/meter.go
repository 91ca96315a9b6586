package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/sttproxy/logger"
)

// InitMeter installs a global meter provider exporting over OTLP/HTTP.
// The returned provider must be shut down on exit to flush pending points.
func InitMeter(ctx context.Context, cfg Config, res Resource) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	var readerOpts []sdkmetric.PeriodicReaderOption
	if cfg.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(cfg.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(newResource(res)),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", res.ServiceName,
		"endpoint", cfg.Endpoint,
		"interval", cfg.Interval.String(),
	))

	return mp, nil
}

// Meter returns the service meter from the global provider.
func Meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Outcome labels for transcription metrics.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Metrics holds the transcription instruments.
type Metrics struct {
	requests   metric.Int64Counter
	duration   metric.Float64Histogram
	audioBytes metric.Int64Histogram
	errors     metric.Int64Counter
}

// NewMetrics creates the transcription instruments on meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	requests, err := meter.Int64Counter("stt.transcription.requests",
		metric.WithDescription("Transcription requests by provider, language and outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stt.transcription.requests counter: %w", err)
	}

	duration, err := meter.Float64Histogram("stt.transcription.duration",
		metric.WithDescription("Upstream transcription latency"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stt.transcription.duration histogram: %w", err)
	}

	audioBytes, err := meter.Int64Histogram("stt.audio.size",
		metric.WithDescription("Size of uploaded audio"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stt.audio.size histogram: %w", err)
	}

	errs, err := meter.Int64Counter("stt.transcription.errors",
		metric.WithDescription("Transcription failures by error code"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stt.transcription.errors counter: %w", err)
	}

	return &Metrics{
		requests:   requests,
		duration:   duration,
		audioBytes: audioBytes,
		errors:     errs,
	}, nil
}

// RecordTranscription records one finished upstream call. A nil receiver is a no-op.
func (m *Metrics) RecordTranscription(ctx context.Context, provider, language, outcome string, size int, d time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("provider", provider),
		attribute.String("language", language),
		attribute.String("outcome", outcome),
	)
	m.requests.Add(ctx, 1, attrs)
	m.duration.Record(ctx, d.Seconds(), attrs)
	m.audioBytes.Record(ctx, int64(size), metric.WithAttributes(attribute.String("provider", provider)))
}

// RecordError counts a failure by its error code.
func (m *Metrics) RecordError(ctx context.Context, provider, code string) {
	if m == nil {
		return
	}
	m.errors.Add(ctx, 1, metric.WithAttributes(
		attribute.String("provider", provider),
		attribute.String("code", code),
	))
}
