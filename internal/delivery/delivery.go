// Package delivery defines the contract every transport entrypoint satisfies.
package delivery

import "context"

// Delivery is a long-running entrypoint (HTTP server, background worker).
// Serve blocks until the delivery stops or the context is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
