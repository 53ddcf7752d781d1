package checkout

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lgpharma/herbal-shop-backend/internal/cart"
	"github.com/lgpharma/herbal-shop-backend/internal/order"
)

const (
	// FreeShippingThreshold is the subtotal above which shipping is waived.
	FreeShippingThreshold = 500
	// ShippingCharge applies to subtotals at or below the threshold.
	ShippingCharge = 50

	// SellerUPI is the shop's collection address shown on the UPI step.
	SellerUPI  = "7317303996@ptsbi"
	SellerName = "Lakshmi Ganga (L.G) Pharma"

	deliveryPartner = "Delhivery Express"
	deliveryDays    = 5
)

// Subtotal sums price times quantity over the lines.
func Subtotal(lines []cart.Line) int {
	total := 0
	for _, l := range lines {
		total += l.Product.Price * l.Quantity
	}
	return total
}

// ShippingFee is zero above the free-shipping threshold, otherwise the
// flat charge.
func ShippingFee(subtotal int) int {
	if subtotal > FreeShippingThreshold {
		return 0
	}
	return ShippingCharge
}

// Env supplies the clock and identifier sources order construction
// needs, keeping the transitions deterministic under test.
type Env struct {
	Now           func() time.Time
	NewOrderID    func() string
	NewTrackingID func() string
	NewPaymentRef func() string
}

func DefaultEnv() Env {
	return Env{
		Now:        time.Now,
		NewOrderID: uuid.NewString,
		NewTrackingID: func() string {
			return "TRK-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
		},
		NewPaymentRef: func() string {
			return fmt.Sprintf("TXN-%d", time.Now().Unix())
		},
	}
}

// BuildOrder freezes the given lines into a Placed order with the
// derived totals. Total = subtotal + shipping fee, always.
func BuildOrder(env Env, lines []cart.Line, method order.PaymentMethod, paymentRef string) order.Order {
	now := env.Now()
	items := make([]cart.Line, len(lines))
	copy(items, lines)
	subtotal := Subtotal(items)

	return order.Order{
		ID:                env.NewOrderID(),
		Date:              now.UTC().Format(time.RFC3339),
		Items:             items,
		Total:             subtotal + ShippingFee(subtotal),
		Status:            order.StatusPlaced,
		PaymentMethod:     method,
		PaymentID:         paymentRef,
		TrackingID:        env.NewTrackingID(),
		DeliveryPartner:   deliveryPartner,
		EstimatedDelivery: now.AddDate(0, 0, deliveryDays).Format("2 Jan 2006"),
	}
}
