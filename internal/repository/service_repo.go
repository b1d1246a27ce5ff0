package repository

import (
	"context"

	"gorm.io/gorm"

	"kikabraids/internal/domain"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

// List returns every service ordered by category then name, the order the
// public catalog renders in.
func (r *ServiceRepository) List(ctx context.Context) ([]domain.Service, error) {
	out := make([]domain.Service, 0)
	tx := r.db.WithContext(ctx).Order("category, name").Find(&out)
	return out, tx.Error
}

func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	var s domain.Service
	tx := r.db.WithContext(ctx).First(&s, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &s, nil
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *ServiceRepository) Update(ctx context.Context, s *domain.Service) error {
	return r.db.WithContext(ctx).Model(&domain.Service{}).
		Where("id = ?", s.ID).
		Updates(map[string]any{
			"name":        s.Name,
			"price":       s.Price,
			"description": s.Description,
			"image":       s.Image,
			"category":    s.Category,
		}).Error
}

// Delete is a no-op for unknown ids. Bookings referencing the service keep
// their denormalized name and price.
func (r *ServiceRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Service{}, id).Error
}
