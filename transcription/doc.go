// Package transcription defines the speech-to-text provider interface, the
// normalization of upstream transcript text and the HTTP handler that exposes
// a provider at POST /api/v1/stt/transcribe.
//
// Backends live in subpackages (see transcription/whisper).
package transcription
