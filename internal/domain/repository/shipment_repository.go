package repository

import (
	"context"

	"shiptrack/internal/domain/entity"
)

// ShipmentRepository defines the operations for shipment persistence.
type ShipmentRepository interface {
	// Create persists a new shipment and fills in the generated ID.
	Create(ctx context.Context, shipment *entity.Shipment) error

	// ListAll returns every stored shipment in insertion order. This is a
	// full scan with no pagination; unbounded growth is an accepted scaling
	// boundary at this scope.
	ListAll(ctx context.Context) ([]*entity.Shipment, error)
}
