// Package lifecycle holds shared constants for fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start and stop hooks such as DB pings, migrations and HTTP shutdown.
const DefaultTimeout = 10 * time.Second
