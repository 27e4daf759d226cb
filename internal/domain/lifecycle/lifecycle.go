// Package lifecycle holds shared timing constants for start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every start/stop hook (DB ping, server shutdown).
const DefaultTimeout = 10 * time.Second
