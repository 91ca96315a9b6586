// Package logger provides structured logging built on zerolog.
//
// It supports JSON and console output, level configuration, component-scoped
// loggers and request-scoped fields carried through context.Context.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("whisper")
//	log.Info("upstream response", logger.Fields("status_code", 200))
package logger
