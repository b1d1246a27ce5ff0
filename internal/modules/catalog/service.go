package catalog

import (
	"context"

	"kikabraids/internal/domain"
	"kikabraids/internal/pkg/validator"
)

const defaultImage = "img/default.jpg"

type Service struct {
	services ServiceRepository
}

func NewService(services ServiceRepository) *Service {
	return &Service{services: services}
}

// ListGrouped partitions the catalog by category for the public site.
// Both slices are non-nil so the JSON always carries both keys.
func (s *Service) ListGrouped(ctx context.Context) (*GroupedServices, error) {
	all, err := s.services.List(ctx)
	if err != nil {
		return nil, err
	}

	out := &GroupedServices{
		Women: make([]domain.Service, 0, len(all)),
		Men:   make([]domain.Service, 0),
	}
	for _, svc := range all {
		switch svc.Category {
		case domain.CategoryWomen:
			out.Women = append(out.Women, svc)
		case domain.CategoryMen:
			out.Men = append(out.Men, svc)
		}
	}
	return out, nil
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Service, error) {
	return s.services.List(ctx)
}

func (s *Service) Create(ctx context.Context, req CreateServiceRequest) (*domain.Service, error) {
	svc := &domain.Service{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Image:       req.Image,
		Category:    domain.ServiceCategory(req.Category),
	}
	if svc.Image == "" {
		svc.Image = defaultImage
	}

	if errs := validator.Validate(svc); errs != nil {
		return nil, ErrValidation
	}

	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateServiceRequest) (*domain.Service, error) {
	svc := &domain.Service{
		ID:          id,
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Image:       req.Image,
		Category:    domain.ServiceCategory(req.Category),
	}

	if errs := validator.Validate(svc); errs != nil {
		return nil, ErrValidation
	}

	if err := s.services.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.services.Delete(ctx, id)
}
