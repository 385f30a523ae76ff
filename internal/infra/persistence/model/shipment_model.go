package model

import (
	"time"

	"github.com/google/uuid"
)

// ShipmentModel mirrors the 'shipments' table. All descriptive columns are
// nullable free-form text; track_id is stored verbatim as supplied.
type ShipmentModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	SenderName      string    `gorm:"type:text"`
	SenderAddress   string    `gorm:"type:text"`
	ReceiverName    string    `gorm:"type:text"`
	ReceiverAddress string    `gorm:"type:text"`
	ShipmentDetails string    `gorm:"type:text"`
	TrackID         string    `gorm:"type:varchar(255)"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShipmentModel) TableName() string {
	return "shipments"
}
