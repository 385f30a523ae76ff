package handler

import (
	"log/slog"
	"net/http"

	"shiptrack/internal/domain/entity"
	domainerrors "shiptrack/internal/domain/errors"
	"shiptrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// shipmentRequest is the inbound shipment shape. Every field is optional, so
// an empty JSON object is a valid request.
type shipmentRequest struct {
	SenderName      string `json:"senderName"`
	SenderAddress   string `json:"senderAddress"`
	ReceiverName    string `json:"receiverName"`
	ReceiverAddress string `json:"receiverAddress"`
	ShipmentDetails string `json:"shipmentDetails"`
	TrackID         string `json:"trackId"`
}

// shipmentResponse is the outward shipment shape including the generated ID.
type shipmentResponse struct {
	ID              uuid.UUID `json:"id"`
	SenderName      string    `json:"senderName"`
	SenderAddress   string    `json:"senderAddress"`
	ReceiverName    string    `json:"receiverName"`
	ReceiverAddress string    `json:"receiverAddress"`
	ShipmentDetails string    `json:"shipmentDetails"`
	TrackID         string    `json:"trackId"`
}

// ShipmentHandler holds dependencies for shipment-related handlers.
type ShipmentHandler struct {
	uc     usecase.ShipmentUsecase
	logger *slog.Logger
}

// NewShipmentHandler is the constructor for ShipmentHandler, injected by Fx.
func NewShipmentHandler(uc usecase.ShipmentUsecase, logger *slog.Logger) *ShipmentHandler {
	return &ShipmentHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the create-shipment request.
func (h *ShipmentHandler) Create(c echo.Context) error {
	var req shipmentRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.NewValidationError("Invalid request body")
	}

	shipment, err := h.uc.CreateShipment(c.Request().Context(), &usecase.CreateShipmentInput{
		SenderName:      req.SenderName,
		SenderAddress:   req.SenderAddress,
		ReceiverName:    req.ReceiverName,
		ReceiverAddress: req.ReceiverAddress,
		ShipmentDetails: req.ShipmentDetails,
		TrackID:         req.TrackID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, toShipmentResponse(shipment))
}

// List handles the list-shipments request.
func (h *ShipmentHandler) List(c echo.Context) error {
	shipments, err := h.uc.ListShipments(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	// Always serialize as an array, never null.
	payload := make([]shipmentResponse, 0, len(shipments))
	for _, shipment := range shipments {
		payload = append(payload, toShipmentResponse(shipment))
	}

	return c.JSON(http.StatusOK, payload)
}

func toShipmentResponse(shipment *entity.Shipment) shipmentResponse {
	return shipmentResponse{
		ID:              shipment.ID,
		SenderName:      shipment.SenderName,
		SenderAddress:   shipment.SenderAddress,
		ReceiverName:    shipment.ReceiverName,
		ReceiverAddress: shipment.ReceiverAddress,
		ShipmentDetails: shipment.ShipmentDetails,
		TrackID:         shipment.TrackID,
	}
}
