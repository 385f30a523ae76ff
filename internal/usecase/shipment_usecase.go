package usecase

import (
	"context"

	"shiptrack/internal/domain/entity"
)

// CreateShipmentInput defines the data accepted when recording a shipment.
// Every field is optional free-form text.
type CreateShipmentInput struct {
	SenderName      string
	SenderAddress   string
	ReceiverName    string
	ReceiverAddress string
	ShipmentDetails string
	TrackID         string
}

// ShipmentUsecase defines the interface for shipment-related business operations.
type ShipmentUsecase interface {
	// CreateShipment persists a new shipment record and returns it with its
	// generated ID.
	CreateShipment(ctx context.Context, input *CreateShipmentInput) (*entity.Shipment, error)

	// ListShipments returns every stored shipment in insertion order.
	ListShipments(ctx context.Context) ([]*entity.Shipment, error)
}
