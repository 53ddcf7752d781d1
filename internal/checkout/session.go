package checkout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lgpharma/herbal-shop-backend/internal/cart"
	"github.com/lgpharma/herbal-shop-backend/internal/order"
)

// Step is the checkout panel's current state.
type Step string

const (
	StepClosed         Step = "Closed"
	StepCart           Step = "Cart"
	StepDetails        Step = "Details"
	StepPaymentMethod  Step = "PaymentMethod"
	StepPaymentExecute Step = "PaymentExecute"
	StepSuccess        Step = "Success"
)

var (
	ErrInvalidTransition = errors.New("action not allowed in current checkout step")
	ErrEmptyCart         = errors.New("cart is empty")
)

// ValidationError is a user-correctable form error; the session stays
// in its current step when one is returned.
type ValidationError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ShippingDetails is the Details-step form.
type ShippingDetails struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (d ShippingDetails) validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return &ValidationError{Field: "name", Reason: "name is required"}
	}
	if strings.TrimSpace(d.Phone) == "" {
		return &ValidationError{Field: "phone", Reason: "phone is required"}
	}
	if strings.TrimSpace(d.Address) == "" {
		return &ValidationError{Field: "address", Reason: "address is required"}
	}
	return nil
}

// Command is a side effect requested by a transition. Transitions are
// pure; the runner executes commands after the transition is accepted.
type Command interface{ isCommand() }

// PersistOrder appends the completed order to the order store.
type PersistOrder struct{ Order order.Order }

// StartAutoClose schedules the Success panel's auto-close timer.
type StartAutoClose struct{}

// CancelAutoClose stops a pending auto-close timer.
type CancelAutoClose struct{}

// ClearCart empties the cart once the completed checkout closes.
type ClearCart struct{}

func (PersistOrder) isCommand()    {}
func (StartAutoClose) isCommand()  {}
func (CancelAutoClose) isCommand() {}
func (ClearCart) isCommand()       {}

// Session is one checkout attempt as a pure value. Transitions return
// the next session plus the commands the runner must execute; the
// receiver is never mutated.
type Session struct {
	Step    Step                `json:"step"`
	Lines   []cart.Line         `json:"items,omitempty"`
	Details ShippingDetails     `json:"details"`
	Method  order.PaymentMethod `json:"method,omitempty"`
	Order   *order.Order        `json:"order,omitempty"`
}

func NewSession() Session {
	return Session{Step: StepClosed}
}

// Open shows the cart step. The panel only opens over a non-empty cart.
func (s Session) Open(cartEmpty bool) (Session, []Command, error) {
	if s.Step != StepClosed {
		return s, nil, ErrInvalidTransition
	}
	if cartEmpty {
		return s, nil, ErrEmptyCart
	}
	s.Step = StepCart
	return s, nil, nil
}

// Proceed moves from the cart review to shipping details, freezing the
// given lines as the in-flight snapshot. Later cart mutations never
// reach the order.
func (s Session) Proceed(lines []cart.Line) (Session, []Command, error) {
	if s.Step != StepCart {
		return s, nil, ErrInvalidTransition
	}
	if len(lines) == 0 {
		return s, nil, ErrEmptyCart
	}
	frozen := make([]cart.Line, len(lines))
	copy(frozen, lines)
	s.Lines = frozen
	s.Step = StepDetails
	return s, nil, nil
}

// SubmitDetails validates and records the shipping form.
func (s Session) SubmitDetails(d ShippingDetails) (Session, []Command, error) {
	if s.Step != StepDetails {
		return s, nil, ErrInvalidTransition
	}
	if err := d.validate(); err != nil {
		return s, nil, err
	}
	s.Details = d
	s.Step = StepPaymentMethod
	return s, nil, nil
}

// SelectMethod picks one of the three payment sub-flows.
func (s Session) SelectMethod(m order.PaymentMethod) (Session, []Command, error) {
	if s.Step != StepPaymentMethod {
		return s, nil, ErrInvalidTransition
	}
	switch m {
	case order.PaymentUPI, order.PaymentCard, order.PaymentCOD:
	default:
		return s, nil, &ValidationError{Field: "method", Reason: "unknown payment method"}
	}
	s.Method = m
	s.Step = StepPaymentExecute
	return s, nil, nil
}

// SubmitPayment completes the selected sub-flow. On success the order
// is constructed exactly once and handed to the runner for an atomic
// durable append, and the auto-close timer is requested.
func (s Session) SubmitPayment(env Env, exec PaymentExecution) (Session, []Command, error) {
	if s.Step != StepPaymentExecute {
		return s, nil, ErrInvalidTransition
	}
	if exec.Method() != s.Method {
		return s, nil, ErrInvalidTransition
	}
	if err := exec.validate(); err != nil {
		return s, nil, err
	}

	ord := BuildOrder(env, s.Lines, s.Method, exec.paymentRef(env))
	s.Order = &ord
	s.Step = StepSuccess
	return s, []Command{PersistOrder{Order: ord}, StartAutoClose{}}, nil
}

// Back returns to the previous step. Previously entered form data is
// kept on the session, so leaving and returning preserves it.
func (s Session) Back() (Session, []Command, error) {
	switch s.Step {
	case StepDetails:
		s.Step = StepCart
	case StepPaymentMethod:
		s.Step = StepDetails
	case StepPaymentExecute:
		s.Step = StepPaymentMethod
		s.Method = ""
	default:
		return s, nil, ErrInvalidTransition
	}
	return s, nil, nil
}

// AutoClose is the Success panel's timer firing: the cart is cleared
// and the session resets to idle.
func (s Session) AutoClose() (Session, []Command, error) {
	if s.Step != StepSuccess {
		return s, nil, ErrInvalidTransition
	}
	return NewSession(), []Command{ClearCart{}}, nil
}

// Close force-closes the panel from any open step. Any pending
// auto-close timer must be cancelled so it can never fire against a
// session (or cart) started afterwards; a close from Success still
// clears the cart, since the order is already placed.
func (s Session) Close() (Session, []Command, error) {
	if s.Step == StepClosed {
		return s, nil, ErrInvalidTransition
	}
	cmds := []Command{CancelAutoClose{}}
	if s.Step == StepSuccess {
		cmds = append(cmds, ClearCart{})
	}
	return NewSession(), cmds, nil
}
