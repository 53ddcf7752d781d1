package checkout

import (
	"sync"
	"time"

	"github.com/lgpharma/herbal-shop-backend/internal/cart"
	"github.com/lgpharma/herbal-shop-backend/internal/order"
)

// Config carries the simulated delays. They are bounded waits with no
// failure path; a real gateway integration would replace them with an
// explicit failure transition back to the method step.
type Config struct {
	CardDelay      time.Duration
	CODDelay       time.Duration
	AutoCloseDelay time.Duration
}

func DefaultConfig() Config {
	return Config{
		CardDelay:      1500 * time.Millisecond,
		CODDelay:       1200 * time.Millisecond,
		AutoCloseDelay: 4 * time.Second,
	}
}

// CartAccess is what the runner needs from the cart: a frozen snapshot
// of the lines and the post-checkout clear.
type CartAccess interface {
	Lines() []cart.Line
	Clear()
}

// Service runs the checkout session: it holds the current session
// value, executes transition commands, and owns the auto-close timer
// handle. One session is active at a time; the mutex only guards
// against overlapping HTTP calls.
type Service struct {
	mu      sync.Mutex
	session Session
	env     Env
	cfg     Config
	cart    CartAccess
	orders  order.ServiceInterface
	timer   *time.Timer
}

func NewService(cartAccess CartAccess, orders order.ServiceInterface, env Env, cfg Config) *Service {
	return &Service{
		session: NewSession(),
		env:     env,
		cfg:     cfg,
		cart:    cartAccess,
		orders:  orders,
	}
}

// Session returns a copy of the current session value.
func (s *Service) Session() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// View is the session as rendered to the client, with derived totals.
type View struct {
	Step      Step                `json:"step"`
	Items     []cart.Line         `json:"items"`
	Subtotal  int                 `json:"subtotal"`
	Shipping  int                 `json:"shipping"`
	Total     int                 `json:"total"`
	Details   ShippingDetails     `json:"details"`
	Method    order.PaymentMethod `json:"method,omitempty"`
	PayTo     string              `json:"payTo,omitempty"`
	PayToName string              `json:"payToName,omitempty"`
	Order     *order.Order        `json:"order,omitempty"`
}

func (s *Service) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.session.Lines
	if s.session.Step == StepCart {
		// the cart step reviews the live cart; the snapshot freezes on proceed
		lines = s.cart.Lines()
	}
	subtotal := Subtotal(lines)
	v := View{
		Step:     s.session.Step,
		Items:    lines,
		Subtotal: subtotal,
		Shipping: ShippingFee(subtotal),
		Total:    subtotal + ShippingFee(subtotal),
		Details:  s.session.Details,
		Method:   s.session.Method,
		Order:    s.session.Order,
	}
	if s.session.Step == StepPaymentExecute && s.session.Method == order.PaymentUPI {
		v.PayTo = SellerUPI
		v.PayToName = SellerName
	}
	return v
}

func (s *Service) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ns, cmds, err := s.session.Open(len(s.cart.Lines()) == 0)
	if err != nil {
		return err
	}
	return s.applyLocked(ns, cmds)
}

func (s *Service) Proceed() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ns, cmds, err := s.session.Proceed(s.cart.Lines())
	if err != nil {
		return err
	}
	return s.applyLocked(ns, cmds)
}

func (s *Service) SubmitDetails(d ShippingDetails) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ns, cmds, err := s.session.SubmitDetails(d)
	if err != nil {
		return err
	}
	return s.applyLocked(ns, cmds)
}

func (s *Service) SelectMethod(m order.PaymentMethod) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ns, cmds, err := s.session.SelectMethod(m)
	if err != nil {
		return err
	}
	return s.applyLocked(ns, cmds)
}

// SubmitPayment runs the selected sub-flow. Invalid input returns
// immediately; valid card and COD submissions wait out the simulated
// gateway delay first. The lock is held throughout, which is what
// blocks a second submission while one is processing.
func (s *Service) SubmitPayment(exec PaymentExecution) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.Step != StepPaymentExecute || exec.Method() != s.session.Method {
		return ErrInvalidTransition
	}
	if err := exec.validate(); err != nil {
		return err
	}
	if d := s.gatewayDelay(exec); d > 0 {
		time.Sleep(d)
	}

	ns, cmds, err := s.session.SubmitPayment(s.env, exec)
	if err != nil {
		return err
	}
	return s.applyLocked(ns, cmds)
}

func (s *Service) Back() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ns, cmds, err := s.session.Back()
	if err != nil {
		return err
	}
	return s.applyLocked(ns, cmds)
}

func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ns, cmds, err := s.session.Close()
	if err != nil {
		return err
	}
	return s.applyLocked(ns, cmds)
}

func (s *Service) gatewayDelay(exec PaymentExecution) time.Duration {
	switch exec.(type) {
	case CardPayment:
		return s.cfg.CardDelay
	case CODPayment:
		return s.cfg.CODDelay
	default:
		return 0
	}
}

// applyLocked executes the transition's commands. Durable writes run
// first: if the order append fails, the session stays where it was and
// nothing else happens (append or nothing).
func (s *Service) applyLocked(ns Session, cmds []Command) error {
	for _, cmd := range cmds {
		if p, ok := cmd.(PersistOrder); ok {
			if err := s.orders.Append(p.Order); err != nil {
				return err
			}
		}
	}
	s.session = ns
	for _, cmd := range cmds {
		switch cmd.(type) {
		case StartAutoClose:
			s.startTimerLocked()
		case CancelAutoClose:
			s.stopTimerLocked()
		case ClearCart:
			s.cart.Clear()
		}
	}
	return nil
}

func (s *Service) startTimerLocked() {
	s.stopTimerLocked()
	s.timer = time.AfterFunc(s.cfg.AutoCloseDelay, s.autoClose)
}

func (s *Service) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Service) autoClose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	ns, cmds, err := s.session.AutoClose()
	if err != nil {
		// a force-close already reset the session; nothing to do
		return
	}
	s.timer = nil
	_ = s.applyLocked(ns, cmds)
}
