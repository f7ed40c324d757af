package product

// ServiceInterface is the subset of product operations other packages rely
// on (order pricing, analytics product names).
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
	return s.repo.GetByID(id)
}

func (s *Service) Create(p Product) (Product, error) {
	return s.repo.Create(p)
}

// Update applies a shallow merge: only fields set in upd overwrite the
// stored record. Returns ErrNotFound when no product has the id.
func (s *Service) Update(id string, upd Update) (Product, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return Product{}, err
	}
	if upd.Name != nil {
		existing.Name = *upd.Name
	}
	if upd.Category != nil {
		existing.Category = *upd.Category
	}
	if upd.Description != nil {
		existing.Description = *upd.Description
	}
	if upd.Price != nil {
		existing.Price = *upd.Price
	}
	if upd.Stock != nil {
		existing.Stock = *upd.Stock
	}
	if upd.Video != nil {
		existing.Video = upd.Video
	}
	if upd.Images != nil {
		existing.Images = *upd.Images
	}
	if upd.Addons != nil {
		existing.Addons = *upd.Addons
	}
	if upd.ExtraFields != nil {
		existing.ExtraFields = *upd.ExtraFields
	}
	return s.repo.Update(id, existing)
}

func (s *Service) Delete(id string) error {
	return s.repo.Delete(id)
}

// SeedDemoData inserts the demo product when the collection is empty. Safe
// to call on every startup; once any product exists it does nothing.
func (s *Service) SeedDemoData() error {
	n, err := s.repo.Count()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for _, p := range DemoProducts() {
		if _, err := s.repo.Create(p); err != nil {
			return err
		}
	}
	return nil
}
