// Package delivery defines the contract shared by all transport servers.
package delivery

import "context"

// Delivery is a long-running transport (HTTP API, worker push endpoint)
// managed by the application lifecycle. Shutdown is registered through
// fx lifecycle hooks by each implementation.
type Delivery interface {
	Serve(ctx context.Context) error
}
