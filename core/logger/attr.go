package logger

import (
	"fmt"
	"log/slog"
	"reflect"
	"time"
)

// Attribute helpers use the empty Attr pattern for nil safety.
// This allows calls like log.Info("msg", logger.Error(err)) without explicit nil checks.

// Group creates a group of attributes under a single key.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// Returns empty Attr for nil errors.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Duration creates an attribute for a duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component creates an attribute for component names.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event creates an attribute for an event key.
// Keys that are not strings are formatted with %v.
func Event(key any) slog.Attr {
	switch k := key.(type) {
	case nil:
		return slog.Attr{}
	case string:
		return slog.String("event", k)
	case fmt.Stringer:
		return slog.String("event", k.String())
	}
	return slog.String("event", fmt.Sprintf("%v", key))
}

// HandlerID creates an attribute for a registered handler's identifier.
func HandlerID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("handler_id", id)
}

// Arity creates an attribute for the number of payload parameters of an event.
func Arity(n int) slog.Attr {
	return slog.Int("arity", n)
}

// PayloadType creates an attribute naming an event's payload type.
// Returns empty Attr for a nil type (events without payload).
func PayloadType(t reflect.Type) slog.Attr {
	if t == nil {
		return slog.Attr{}
	}
	return slog.String("payload_type", t.String())
}

// Action creates an attribute for action names.
func Action(action string) slog.Attr {
	return slog.String("action", action)
}

// Count creates a generic counter attribute.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}
