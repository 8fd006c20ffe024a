// Package config loads library configuration from environment variables
// with sensible defaults.
//
// The library has exactly one configurable concern: how loudly the
// initialization and host-binding steps log. Everything mathematical is
// compiled in and not configurable.
//
// Environment Variables:
//   - SPECIALS_LOG_LEVEL: "debug", "info", "warn", "error" (default "info")
//   - SPECIALS_LOG_DEV: console encoding with colored levels (default false)
package config
