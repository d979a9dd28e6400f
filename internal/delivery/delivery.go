// Package delivery defines the contract every transport implementation
// (HTTP, future workers) exposes to the application entrypoint.
package delivery

import "context"

// Delivery is a serving surface the main goroutine can block on.
type Delivery interface {
	// Serve runs the delivery until it fails or is shut down.
	Serve(ctx context.Context) error
}
