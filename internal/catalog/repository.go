package catalog

import "errors"

var (
	ErrNotFound = errors.New("product not found")
)

// Repository provides read-only access to the product catalog.
type Repository interface {
	List() []Product
	GetByID(id string) (Product, error)
}

// InMemoryRepository serves the static catalog; it never mutates after
// construction so reads need no locking.
type InMemoryRepository struct {
	products []Product
	byID     map[string]Product
}

func NewInMemoryRepository(products []Product) *InMemoryRepository {
	r := &InMemoryRepository{
		products: make([]Product, 0, len(products)),
		byID:     make(map[string]Product, len(products)),
	}
	for _, p := range products {
		r.products = append(r.products, p)
		r.byID[p.ID] = p
	}
	return r
}

func (r *InMemoryRepository) List() []Product {
	out := make([]Product, len(r.products))
	copy(out, r.products)
	return out
}

func (r *InMemoryRepository) GetByID(id string) (Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return Product{}, ErrNotFound
	}
	return p, nil
}
