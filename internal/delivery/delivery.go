// Package delivery defines the contract every transport surface implements.
package delivery

import "context"

// Delivery is a serving surface started by the application runner.
// Serve blocks until the surface stops or ctx is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
