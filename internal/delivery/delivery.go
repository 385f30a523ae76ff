// Package delivery defines the contract every transport (HTTP today) fulfills.
package delivery

import "context"

// Delivery is a serving transport whose lifecycle is managed by the application container.
type Delivery interface {
	Serve(ctx context.Context) error
}
