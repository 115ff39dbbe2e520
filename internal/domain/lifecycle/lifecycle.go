// Package lifecycle defines shared constants for orderly startup and
// shutdown under the fx application lifecycle.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of a transport or resource.
const DefaultTimeout = 10 * time.Second
