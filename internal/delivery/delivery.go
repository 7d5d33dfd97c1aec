// Package delivery defines the contract shared by every inbound transport.
package delivery

import "context"

// Delivery is a long-running transport started by the cmd entrypoint.
type Delivery interface {
	// Serve blocks until the transport stops.
	Serve(ctx context.Context) error
}
