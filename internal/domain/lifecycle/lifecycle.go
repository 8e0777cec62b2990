// Package lifecycle holds shared timing constants for process start and stop.
package lifecycle

import "time"

// DefaultTimeout bounds each fx start/stop hook.
const DefaultTimeout = 30 * time.Second
