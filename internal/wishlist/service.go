package wishlist

import (
	"github.com/lgpharma/herbal-shop-backend/internal/catalog"
)

type Service struct {
	repo    Repository
	catalog catalog.ServiceInterface
}

func NewService(repo Repository, cs catalog.ServiceInterface) *Service {
	return &Service{repo: repo, catalog: cs}
}

// Toggle resolves the product and flips its saved state, reporting
// whether the product is now on the wishlist.
func (s *Service) Toggle(productID string) (bool, error) {
	p, err := s.catalog.GetByID(productID)
	if err != nil {
		return false, err
	}
	return s.repo.Toggle(p)
}

func (s *Service) List() []catalog.Product {
	return s.repo.List()
}

// Contains feeds the catalog's "is-saved" indicator for one product.
func (s *Service) Contains(productID string) bool {
	return s.repo.Contains(productID)
}
