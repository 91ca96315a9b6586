// Package component defines lifecycle-managed parts of the service (the
// HTTP server, the transcription provider) and a registry that starts them
// in order, stops them in reverse and aggregates their health.
package component
