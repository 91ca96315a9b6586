package whisper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/kbukum/sttproxy/errors"
	"github.com/kbukum/sttproxy/httpclient"
	"github.com/kbukum/sttproxy/logger"
	"github.com/kbukum/sttproxy/observability"
	"github.com/kbukum/sttproxy/transcription"
	"github.com/kbukum/sttproxy/util"
)

const (
	// ProviderName is the name reported in logs, metrics and health.
	ProviderName = "whisper"

	upstreamService = "speech-to-text"
	fallbackExt     = ".wav"
)

// Provider implements transcription.Provider against an OpenAI-compatible
// Whisper transcription endpoint.
type Provider struct {
	cfg     Config
	client  *httpclient.Client
	metrics *observability.Metrics
	log     *logger.Logger
}

// Option configures a Provider.
type Option func(*Provider)

// WithMetrics records transcription metrics on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(p *Provider) { p.metrics = m }
}

// WithLogger overrides the component logger.
func WithLogger(l *logger.Logger) Option {
	return func(p *Provider) { p.log = l }
}

// NewProvider creates a Whisper provider. The config is copied; defaults are
// applied to the copy.
func NewProvider(cfg Config, opts ...Option) (*Provider, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client, err := httpclient.New(httpclient.Config{
		Timeout: cfg.Timeout,
		Auth:    httpclient.BearerAuth(cfg.APIKey),
	})
	if err != nil {
		return nil, fmt.Errorf("whisper: create http client: %w", err)
	}

	p := &Provider{
		cfg:    cfg,
		client: client,
		log:    logger.Get(ProviderName),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Name returns the provider name.
func (p *Provider) Name() string { return ProviderName }

// IsAvailable reports whether both the endpoint and the key are set.
func (p *Provider) IsAvailable(context.Context) bool {
	return p.cfg.APIKey != "" && p.cfg.STTURL != ""
}

// Transcribe forwards the audio to the upstream endpoint and returns the
// normalized transcript.
func (p *Provider) Transcribe(ctx context.Context, req transcription.Request) (*transcription.Result, error) {
	start := time.Now()
	ctx, span := observability.StartSpan(ctx, "whisper.transcribe",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String(observability.AttrProvider, ProviderName),
			attribute.String(observability.AttrLanguage, req.Language),
			attribute.Int(observability.AttrAudioBytes, len(req.Audio)),
		),
	)
	defer span.End()

	log := p.log.WithContext(ctx)
	result, err := p.transcribe(ctx, req, log)
	elapsed := time.Since(start)

	outcome := observability.OutcomeSuccess
	if err != nil {
		outcome = observability.OutcomeError
		appErr := apperrors.Wrap(err)
		observability.SetSpanError(ctx, err)
		span.SetAttributes(attribute.String(observability.AttrErrorKind, string(appErr.Code)))
		p.metrics.RecordError(ctx, ProviderName, string(appErr.Code))
		log.Warn("transcription failed", logger.Fields(
			logger.FieldError, err.Error(),
			logger.FieldStatusCode, appErr.HTTPStatus,
			logger.FieldDuration, elapsed.Milliseconds(),
		))
	} else {
		log.Info("transcription completed", logger.Fields(
			logger.FieldLanguage, req.Language,
			logger.FieldBytes, len(req.Audio),
			logger.FieldDuration, elapsed.Milliseconds(),
			"audio_seconds", result.Duration,
			"chars", len(result.Text),
		))
	}
	p.metrics.RecordTranscription(ctx, ProviderName, req.Language, outcome, len(req.Audio), elapsed)

	return result, err
}

func (p *Provider) transcribe(ctx context.Context, req transcription.Request, log *logger.Logger) (*transcription.Result, error) {
	if p.cfg.APIKey == "" {
		return nil, apperrors.Configuration("GMS_API_KEY is not set")
	}

	resp, err := p.client.Do(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   p.cfg.STTURL,
		Body:   p.buildBody(req),
	})
	if err != nil {
		return nil, p.upstreamError(err, log)
	}

	trace.SpanFromContext(ctx).SetAttributes(attribute.Int(observability.AttrUpstreamStatus, resp.StatusCode))
	log.Info("upstream responded", logger.Fields(logger.FieldStatusCode, resp.StatusCode))
	log.Debug("upstream body", logger.Fields("body", string(resp.Body)))

	return decodeResult(resp.Body)
}

// buildBody assembles the multipart form sent upstream.
func (p *Provider) buildBody(req transcription.Request) *httpclient.MultipartBody {
	body := &httpclient.MultipartBody{
		Files: []httpclient.FileField{{
			FieldName:   "file",
			FileName:    uploadFilename(req),
			ContentType: req.ContentType,
			Data:        req.Audio,
		}},
	}
	return body.
		Field("model", p.cfg.Model).
		Field("response_format", "verbose_json").
		Field("language", req.Language).
		Field("timestamp_granularities", `["word"]`).
		Field("temperature", "0").
		Field("condition_on_previous_text", "false").
		Field("prompt", p.cfg.Prompt)
}

// uploadFilename keeps the client filename when usable, otherwise "audio"
// plus an extension sniffed from the bytes. Non-media detections fall back
// to .wav.
func uploadFilename(req transcription.Request) string {
	if name := util.CleanFilename(req.Filename); name != "" {
		return name
	}
	ext := fallbackExt
	mt := mimetype.Detect(req.Audio)
	if isMedia(mt.String()) && mt.Extension() != "" {
		ext = mt.Extension()
	}
	return "audio" + ext
}

func isMedia(mime string) bool {
	return strings.HasPrefix(mime, "audio/") || strings.HasPrefix(mime, "video/")
}

// upstreamError maps an httpclient failure. Failures without an upstream
// response are gateway errors; anything else forwards the upstream answer.
func (p *Provider) upstreamError(err error, log *logger.Logger) error {
	ce, ok := httpclient.AsError(err)
	if !ok {
		return apperrors.ProxyError(err)
	}
	if ce.IsTransport() {
		cause := ce.Err
		if cause == nil {
			cause = ce
		}
		return apperrors.ProxyError(cause)
	}

	log.Info("upstream responded", logger.Fields(logger.FieldStatusCode, ce.StatusCode))
	log.Debug("upstream body", logger.Fields("body", string(ce.Body)))
	return apperrors.UpstreamRejected(ce.StatusCode, ce.Body).
		WithDetail("upstream_code", ce.Code.String()).
		WithCause(err)
}

// decodeResult reads the verbose_json answer. Only "text" matters; language
// and duration are read when they have the expected type.
func decodeResult(body []byte) (*transcription.Result, error) {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(body, &members); err != nil {
		return nil, apperrors.ExternalServiceError(upstreamService, fmt.Errorf("decode upstream response: %w", err))
	}
	if members == nil {
		return nil, apperrors.ExternalServiceError(upstreamService, fmt.Errorf("upstream response is not a JSON object"))
	}

	result := &transcription.Result{Text: transcription.NormalizeText(members["text"])}
	if raw, ok := members["language"]; ok {
		_ = json.Unmarshal(raw, &result.Language)
	}
	if raw, ok := members["duration"]; ok {
		if err := json.Unmarshal(raw, &result.Duration); err != nil {
			var s string
			if json.Unmarshal(raw, &s) == nil {
				result.Duration, _ = strconv.ParseFloat(s, 64)
			}
		}
	}
	return result, nil
}
