// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/eventqueue/core/config"
//
//	type QueueConfig struct {
//		Name        string `env:"EVENTQUEUE_NAME" envDefault:"eventqueue"`
//		LogDispatch bool   `env:"EVENTQUEUE_LOG_DISPATCH" envDefault:"false"`
//	}
//
//	func main() {
//		var cfg QueueConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 QueueConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 QueueConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently:
//
//	type AuditConfig struct {
//		Events []string `env:"AUDIT_EVENTS" envSeparator:","`
//	}
//
//	// Each type has its own cache entry
//	config.MustLoad(&QueueConfig{})
//	config.MustLoad(&AuditConfig{})
//
// Reset drops every cached entry; it exists for tests that change the
// environment between loads.
package config
