package repository

import (
	"context"

	"gorm.io/gorm"

	"kikabraids/internal/domain"
)

type TestimonialRepository struct {
	db *gorm.DB
}

func NewTestimonialRepository(db *gorm.DB) *TestimonialRepository {
	return &TestimonialRepository{db: db}
}

func (r *TestimonialRepository) Create(ctx context.Context, t *domain.Testimonial) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TestimonialRepository) ListByStatus(ctx context.Context, status domain.TestimonialStatus) ([]domain.Testimonial, error) {
	out := make([]domain.Testimonial, 0)
	tx := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&out)
	return out, tx.Error
}

func (r *TestimonialRepository) ListAll(ctx context.Context) ([]domain.Testimonial, error) {
	out := make([]domain.Testimonial, 0)
	tx := r.db.WithContext(ctx).Order("created_at DESC").Find(&out)
	return out, tx.Error
}

func (r *TestimonialRepository) UpdateStatus(ctx context.Context, id int64, status domain.TestimonialStatus) error {
	return r.db.WithContext(ctx).Model(&domain.Testimonial{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *TestimonialRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Testimonial{}, id).Error
}
