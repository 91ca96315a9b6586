// Package observability wires OpenTelemetry tracing and metrics for the
// proxy.
//
//	shutdown, err := observability.Setup(ctx, cfg.Observability, observability.Resource{
//		ServiceName: "sttproxy",
//	})
//	defer shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, "whisper.transcribe")
//	defer span.End()
//
// Metrics are created once per provider:
//
//	metrics, err := observability.NewMetrics(observability.Meter())
//	metrics.RecordTranscription(ctx, "whisper", "ko", observability.OutcomeSuccess, len(audio), elapsed)
package observability
