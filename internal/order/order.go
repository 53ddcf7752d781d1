package order

import (
	"github.com/lgpharma/herbal-shop-backend/internal/cart"
)

// Status is the delivery state of an order. The first five values form
// the fixed tracking sequence; Cancelled sits outside it.
type Status string

const (
	StatusPlaced         Status = "Placed"
	StatusPacked         Status = "Packed"
	StatusShipped        Status = "Shipped"
	StatusOutForDelivery Status = "Out for Delivery"
	StatusDelivered      Status = "Delivered"
	StatusCancelled      Status = "Cancelled"
)

type PaymentMethod string

const (
	PaymentUPI  PaymentMethod = "UPI"
	PaymentCard PaymentMethod = "Card"
	PaymentCOD  PaymentMethod = "COD"
)

// TimelineEntry is a dated/located annotation for one delivery stage.
type TimelineEntry struct {
	Status   Status `json:"status"`
	Date     string `json:"date"`
	Time     string `json:"time,omitempty"`
	Location string `json:"location,omitempty"`
}

// Order is a frozen purchase. Everything except Status is immutable
// once created; Status is advanced by the fulfilment side, never by
// the checkout core.
type Order struct {
	ID                string          `json:"id"`
	Date              string          `json:"date"`
	Items             []cart.Line     `json:"items"`
	Total             int             `json:"total"`
	Status            Status          `json:"status"`
	PaymentMethod     PaymentMethod   `json:"paymentMethod"`
	PaymentID         string          `json:"paymentId,omitempty"`
	TrackingID        string          `json:"trackingId"`
	DeliveryPartner   string          `json:"deliveryPartner"`
	EstimatedDelivery string          `json:"estimatedDelivery"`
	Timeline          []TimelineEntry `json:"timeline,omitempty"`
}
