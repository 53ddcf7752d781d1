package cart

import (
	"sync"

	"github.com/lgpharma/herbal-shop-backend/internal/catalog"
)

// View is the cart as presented to callers: lines plus derived subtotal.
type View struct {
	Items    []Line `json:"items"`
	Subtotal int    `json:"subtotal"`
}

// Service owns the active session's cart. The cart belongs to a single
// logical actor; the mutex only guards against overlapping HTTP calls.
type Service struct {
	mu      sync.Mutex
	cart    Cart
	catalog catalog.ServiceInterface
}

func NewService(cs catalog.ServiceInterface) *Service {
	return &Service{catalog: cs}
}

// Add resolves the product and adds it to the cart. Repeated adds for
// the same product only increment its quantity.
func (s *Service) Add(productID string) (View, error) {
	p, err := s.catalog.GetByID(productID)
	if err != nil {
		return View{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Add(p)
	return s.viewLocked(), nil
}

func (s *Service) UpdateQuantity(productID string, delta int) View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.UpdateQuantity(productID, delta)
	return s.viewLocked()
}

func (s *Service) Remove(productID string) View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Remove(productID)
	return s.viewLocked()
}

func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
}

// Contains reports whether a specific product is already in the cart.
func (s *Service) Contains(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Contains(productID)
}

func (s *Service) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

// Lines returns a frozen copy of the current cart lines.
func (s *Service) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines()
}

func (s *Service) viewLocked() View {
	return View{Items: s.cart.Lines(), Subtotal: s.cart.Subtotal()}
}
