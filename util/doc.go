// Package util holds small helpers shared by the server and the
// transcription packages: size parsing, secret masking and upload filename
// cleanup.
package util
