package impl

import (
	"context"
	"log/slog"

	"shiptrack/internal/domain/entity"
	domainerrors "shiptrack/internal/domain/errors"
	"shiptrack/internal/domain/repository"
	"shiptrack/internal/usecase"

	"go.uber.org/fx"
)

// shipmentService implements the ShipmentUsecase interface.
type shipmentService struct {
	shipmentRepo repository.ShipmentRepository
	logger       *slog.Logger
}

// ShipmentServiceParams holds dependencies for shipmentService, injected by Fx.
type ShipmentServiceParams struct {
	fx.In

	ShipmentRepo repository.ShipmentRepository
	Logger       *slog.Logger
}

// NewShipmentService is the constructor for shipmentService.
func NewShipmentService(params ShipmentServiceParams) usecase.ShipmentUsecase {
	return &shipmentService{
		shipmentRepo: params.ShipmentRepo,
		logger:       params.Logger,
	}
}

// CreateShipment persists a new shipment record. Unlike the auth path, a
// store failure here passes its message through to the caller with a 400.
func (srv *shipmentService) CreateShipment(ctx context.Context, input *usecase.CreateShipmentInput) (*entity.Shipment, error) {
	shipment := &entity.Shipment{
		SenderName:      input.SenderName,
		SenderAddress:   input.SenderAddress,
		ReceiverName:    input.ReceiverName,
		ReceiverAddress: input.ReceiverAddress,
		ShipmentDetails: input.ShipmentDetails,
		TrackID:         input.TrackID,
	}

	if err := srv.shipmentRepo.Create(ctx, shipment); err != nil {
		srv.logger.Warn("Failed to create shipment", slog.Any("error", err))

		return nil, domainerrors.NewShipmentStoreError(err)
	}

	srv.logger.Debug("Shipment created", slog.Any("shipmentID", shipment.ID))

	return shipment, nil
}

// ListShipments returns every stored shipment in insertion order.
func (srv *shipmentService) ListShipments(ctx context.Context) ([]*entity.Shipment, error) {
	shipments, err := srv.shipmentRepo.ListAll(ctx)
	if err != nil {
		srv.logger.Warn("Failed to list shipments", slog.Any("error", err))

		return nil, domainerrors.NewShipmentStoreError(err)
	}

	return shipments, nil
}
