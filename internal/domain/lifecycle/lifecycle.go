// Package lifecycle holds shared constants for application start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown hooks (database pings, server drains).
const DefaultTimeout = 10 * time.Second
