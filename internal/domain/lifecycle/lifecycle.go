// Package lifecycle holds shared timeouts for component start and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle hooks such as server shutdown and the
// initial database ping.
const DefaultTimeout = 10 * time.Second
