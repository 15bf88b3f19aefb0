// Package lifecycle holds timeouts shared by fx start and stop hooks.
package lifecycle

import "time"

const (
	// DefaultTimeout bounds a single start or stop hook.
	DefaultTimeout = 10 * time.Second

	// MigrationTimeout bounds schema migration on startup.
	MigrationTimeout = 60 * time.Second
)
