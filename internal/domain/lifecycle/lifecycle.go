// Package lifecycle holds shared timeouts for component start and stop.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of delivery components.
const DefaultTimeout = 10 * time.Second
