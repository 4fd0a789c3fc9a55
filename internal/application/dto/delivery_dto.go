package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDeliveryRequest entrada para registrar una entrega. UserID por defecto es el usuario del token.
type CreateDeliveryRequest struct {
	TrackingNo    string           `json:"trackingNo"`
	ItemName      string           `json:"itemName"`
	Status        string           `json:"status,omitempty"`
	ReceiverName  string           `json:"receiverName"`
	ReceiverPhone string           `json:"receiverPhone"`
	SenderName    string           `json:"senderName"`
	SenderPhone   string           `json:"senderPhone"`
	Location      string           `json:"location"`
	Notes         string           `json:"notes"`
	Weight        *decimal.Decimal `json:"weight,omitempty"`
	UserID        string           `json:"userId"`
}

// DeliveryResponse salida de una entrega.
type DeliveryResponse struct {
	ID            string          `json:"id"`
	TrackingNo    string          `json:"trackingNo"`
	ItemName      string          `json:"itemName"`
	Status        string          `json:"status"`
	ReceiverName  string          `json:"receiverName"`
	ReceiverPhone string          `json:"receiverPhone"`
	SenderName    string          `json:"senderName"`
	SenderPhone   string          `json:"senderPhone"`
	Location      string          `json:"location"`
	Notes         string          `json:"notes"`
	Weight        decimal.Decimal `json:"weight"`
	UserID        string          `json:"userId"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
