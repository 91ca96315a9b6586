package transcription

import "context"

// Provider is the interface that transcription backends must implement.
type Provider interface {
	// Name returns the backend name used in logs and metrics.
	Name() string
	// IsAvailable reports whether the backend is configured well enough to
	// accept calls. It must not contact the upstream.
	IsAvailable(ctx context.Context) bool
	// Transcribe sends the audio upstream and returns the normalized transcript.
	Transcribe(ctx context.Context, req Request) (*Result, error)
}
