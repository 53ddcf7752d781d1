package checkout

import (
	"regexp"
	"strings"

	"github.com/lgpharma/herbal-shop-backend/internal/order"
)

// PaymentExecution is the payment-step input as a tagged union, one
// variant per sub-flow, dispatched by Session.SubmitPayment.
type PaymentExecution interface {
	Method() order.PaymentMethod
	validate() error
	paymentRef(env Env) string
}

// UPIPayment carries the transaction reference the customer enters
// after paying the seller's UPI id.
type UPIPayment struct {
	TxnID string `json:"txnId"`
}

// CardPayment is the simulated card-gateway form.
type CardPayment struct {
	Number string `json:"number"`
	Holder string `json:"holder"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
}

// CODPayment is cash on delivery; nothing to collect.
type CODPayment struct{}

func (UPIPayment) Method() order.PaymentMethod { return order.PaymentUPI }

func (CardPayment) Method() order.PaymentMethod { return order.PaymentCard }

func (CODPayment) Method() order.PaymentMethod { return order.PaymentCOD }

func (p UPIPayment) validate() error {
	if len(strings.TrimSpace(p.TxnID)) <= 5 {
		return &ValidationError{Field: "txnId", Reason: "please enter a valid transaction id"}
	}
	return nil
}

var (
	cardNumberRe = regexp.MustCompile(`^[0-9]{16}$`)
	cardCVVRe    = regexp.MustCompile(`^[0-9]{3}$`)
	cardExpiryRe = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)
)

func (p CardPayment) validate() error {
	number := strings.ReplaceAll(p.Number, " ", "")
	if !cardNumberRe.MatchString(number) {
		return &ValidationError{Field: "number", Reason: "card number must be 16 digits"}
	}
	if strings.TrimSpace(p.Holder) == "" {
		return &ValidationError{Field: "holder", Reason: "cardholder name is required"}
	}
	if !cardExpiryRe.MatchString(p.Expiry) {
		return &ValidationError{Field: "expiry", Reason: "expiry must be MM/YY"}
	}
	if !cardCVVRe.MatchString(p.CVV) {
		return &ValidationError{Field: "cvv", Reason: "cvv must be 3 digits"}
	}
	return nil
}

func (CODPayment) validate() error { return nil }

func (p UPIPayment) paymentRef(Env) string { return strings.TrimSpace(p.TxnID) }

func (CardPayment) paymentRef(env Env) string { return env.NewPaymentRef() }

func (CODPayment) paymentRef(Env) string { return "" }
