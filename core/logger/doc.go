// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) and integrates with the Fiber service surface.
//
// # Request correlation
//
// The WithRayID helper extracts the ray ID from a Fiber context and attaches
// it to the log entry, so every log line produced while serving one editing
// request can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("content tree hydrated")
package logger
