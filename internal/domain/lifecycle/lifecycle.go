// Package lifecycle holds shared lifecycle constants.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown work (server drain, store
// close) performed inside fx lifecycle hooks.
const DefaultTimeout = 15 * time.Second
