// Package delivery defines the contract every transport entrypoint satisfies.
package delivery

import "context"

// Delivery is a server that blocks in Serve until the context is cancelled
// or the listener fails. Shutdown is handled through Fx lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
