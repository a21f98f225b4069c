// Package delivery defines the transport entry points of the service. Each
// delivery (HTTP today, workers later) is started by main and stopped through
// the Fx lifecycle.
package delivery

import "context"

// Delivery is a long-running transport server.
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}
