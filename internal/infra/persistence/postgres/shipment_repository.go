package postgres

import (
	"context"

	"shiptrack/internal/domain/entity"
	"shiptrack/internal/domain/repository"
	"shiptrack/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// shipmentRepository implements the domain.ShipmentRepository interface using GORM.
type shipmentRepository struct {
	db *gorm.DB
}

// NewShipmentRepository is the constructor for shipmentRepository.
func NewShipmentRepository(db *gorm.DB) repository.ShipmentRepository {
	return &shipmentRepository{db: db}
}

// Create persists a new shipment and fills in the generated ID.
func (repo *shipmentRepository) Create(ctx context.Context, shipment *entity.Shipment) error {
	shipmentM := fromShipmentDomain(shipment)

	if err := repo.db.WithContext(ctx).Create(shipmentM).Error; err != nil {
		return errors.Wrap(err, "failed to create shipment")
	}

	shipment.ID = shipmentM.ID
	shipment.CreatedAt = shipmentM.CreatedAt

	return nil
}

// ListAll returns every stored shipment ordered by insertion time. There is
// no pagination; callers receive the whole table.
func (repo *shipmentRepository) ListAll(ctx context.Context) ([]*entity.Shipment, error) {
	var shipmentModels []*model.ShipmentModel
	if err := repo.db.WithContext(ctx).Order("created_at asc").Find(&shipmentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list shipments")
	}

	shipments := make([]*entity.Shipment, 0, len(shipmentModels))
	for _, shipmentM := range shipmentModels {
		shipments = append(shipments, toShipmentDomain(shipmentM))
	}

	return shipments, nil
}

// --- Mapper Functions ---

func toShipmentDomain(data *model.ShipmentModel) *entity.Shipment {
	if data == nil {
		return nil
	}

	return &entity.Shipment{
		ID:              data.ID,
		SenderName:      data.SenderName,
		SenderAddress:   data.SenderAddress,
		ReceiverName:    data.ReceiverName,
		ReceiverAddress: data.ReceiverAddress,
		ShipmentDetails: data.ShipmentDetails,
		TrackID:         data.TrackID,
		CreatedAt:       data.CreatedAt,
	}
}

func fromShipmentDomain(data *entity.Shipment) *model.ShipmentModel {
	if data == nil {
		return nil
	}

	return &model.ShipmentModel{
		ID:              data.ID,
		SenderName:      data.SenderName,
		SenderAddress:   data.SenderAddress,
		ReceiverName:    data.ReceiverName,
		ReceiverAddress: data.ReceiverAddress,
		ShipmentDetails: data.ShipmentDetails,
		TrackID:         data.TrackID,
	}
}
