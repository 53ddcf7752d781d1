package order

// ServiceInterface lets the checkout and assistant packages depend on
// orders without the concrete service.
type ServiceInterface interface {
	Append(ord Order) error
	List() []Order
	Find(id string) (Order, error)
}

type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

func (s *Service) Append(ord Order) error {
	return s.repo.Append(ord)
}

func (s *Service) List() []Order {
	return s.repo.List()
}

func (s *Service) Find(id string) (Order, error) {
	if id == "" {
		return Order{}, ErrNotFound
	}
	return s.repo.Find(id)
}
