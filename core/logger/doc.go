// Package logger provides the structured logging helpers used by the event
// queue. It is built on the standard log/slog package: New assembles a
// *slog.Logger from options, and the attribute helpers produce consistently
// keyed attributes for queue operations.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/eventqueue/core/logger"
//
//	log := logger.New(
//		logger.WithDevelopment("billing"),
//		logger.WithLevel(slog.LevelDebug),
//	)
//
//	q := eventqueue.New[string](eventqueue.WithLogger(log))
//
// # Attribute Helpers
//
// Helpers return the empty slog.Attr when their input carries no information
// (a nil error, an empty id), and slog drops empty attributes, so they can be
// passed unconditionally:
//
//	log.Warn("handler failed",
//		logger.Component("eventqueue"),
//		logger.Event(key),
//		logger.HandlerID(h.ID()),
//		logger.Error(err),
//	)
package logger
