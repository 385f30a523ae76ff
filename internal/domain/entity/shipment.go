package entity

import (
	"time"

	"github.com/google/uuid"
)

// Shipment is a persisted sender/receiver/detail record. Every descriptive
// field is optional free-form text, and TrackID is caller-supplied; the
// system neither generates nor validates it. Shipments are global: no
// relationship to an Account is modeled or enforced.
type Shipment struct {
	ID              uuid.UUID
	SenderName      string
	SenderAddress   string
	ReceiverName    string
	ReceiverAddress string
	ShipmentDetails string
	TrackID         string
	CreatedAt       time.Time
}
