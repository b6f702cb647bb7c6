// Package lifecycle holds shared timeouts for component start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown of managed components.
const DefaultTimeout = 10 * time.Second
