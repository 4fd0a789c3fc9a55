package entity

import (
	"time"

	"github.com/jhoicas/opsdesk-api/internal/domain"
	"github.com/shopspring/decimal"
)

// DeliveryStatus estado de seguimiento de una entrega.
type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "PENDING"
	DeliveryInTransit DeliveryStatus = "IN_TRANSIT"
	DeliveryDelivered DeliveryStatus = "DELIVERED"
)

// DeliveryStatuses enumeración cerrada de estados de Delivery.
var DeliveryStatuses = domain.NewEnum("status", DeliveryPending, DeliveryInTransit, DeliveryDelivered)

// Delivery paquete o ítem en seguimiento (TrackingItem). TrackingNo es único.
type Delivery struct {
	ID            string
	TrackingNo    string
	ItemName      string
	Status        DeliveryStatus
	ReceiverName  string
	ReceiverPhone string
	SenderName    string
	SenderPhone   string
	Location      string
	Notes         string
	Weight        decimal.Decimal // kg
	UserID        string          // creador
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
