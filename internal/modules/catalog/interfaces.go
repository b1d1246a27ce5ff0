package catalog

import (
	"context"

	"kikabraids/internal/domain"
)

// ServiceRepository defines the store operations the catalog needs.
type ServiceRepository interface {
	List(ctx context.Context) ([]domain.Service, error)
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	Create(ctx context.Context, s *domain.Service) error
	Update(ctx context.Context, s *domain.Service) error
	Delete(ctx context.Context, id int64) error
}
