// Package delivery defines the contract every transport surface fulfills.
package delivery

import "context"

// Delivery is one serving surface of the application (HTTP today).
type Delivery interface {
	// Serve blocks, serving requests until the surface is shut down.
	Serve(ctx context.Context) error
}
