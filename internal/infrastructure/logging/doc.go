// Package logging provides structured logging for the homegraph server.
//
// It wraps log/slog with JSON or text output, level filtering and the
// default fields service=homegraph and version on every entry.
//
// # Configuration
//
//	logging:
//	  level: "info"      # debug, info, warn, error
//	  format: "json"     # json, text
//	  output: "stdout"   # stdout, stderr, discard
//
// # Usage
//
//	logger := logging.New(cfg.Logging, version)
//	logger.Component("api").Info("listening", "addr", addr)
//
// Never log bearer tokens, the JWT secret or broker credentials.
package logging
