package catalog

// ServiceInterface is implemented by Service; other packages depend on
// it so tests can substitute fakes.
type ServiceInterface interface {
	List() []Product
	GetByID(id string) (Product, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []Product {
	return s.repo.List()
}

func (s *Service) GetByID(id string) (Product, error) {
	if id == "" {
		return Product{}, ErrNotFound
	}
	return s.repo.GetByID(id)
}
