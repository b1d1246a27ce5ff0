package testimonial

import (
	"context"

	"kikabraids/internal/domain"
)

// TestimonialRepository defines the store operations for reviews.
type TestimonialRepository interface {
	Create(ctx context.Context, t *domain.Testimonial) error
	ListByStatus(ctx context.Context, status domain.TestimonialStatus) ([]domain.Testimonial, error)
	ListAll(ctx context.Context) ([]domain.Testimonial, error)
	UpdateStatus(ctx context.Context, id int64, status domain.TestimonialStatus) error
	Delete(ctx context.Context, id int64) error
}
