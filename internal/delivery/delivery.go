// Package delivery defines the contract every transport entry point of the
// service satisfies.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) started by the application
// bootstrap and stopped through the Fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
