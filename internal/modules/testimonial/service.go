package testimonial

import (
	"context"

	"kikabraids/internal/domain"
	"kikabraids/internal/pkg/validator"
)

type Service struct {
	testimonials TestimonialRepository
}

func NewService(testimonials TestimonialRepository) *Service {
	return &Service{testimonials: testimonials}
}

// Create stores a new review. Submissions always start pending regardless of
// any status the client sends; only moderation makes them public.
func (s *Service) Create(ctx context.Context, req CreateTestimonialRequest) (*domain.Testimonial, error) {
	t := &domain.Testimonial{
		Name:        req.Name,
		Email:       req.Email,
		Rating:      req.Rating,
		Message:     req.Message,
		ServiceName: req.ServiceName,
		Status:      domain.TestimonialPending,
	}

	if errs := validator.Validate(t); errs != nil {
		return nil, ErrValidation
	}

	if err := s.testimonials.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// ListPublic returns only approved testimonials.
func (s *Service) ListPublic(ctx context.Context) ([]domain.Testimonial, error) {
	return s.testimonials.ListByStatus(ctx, domain.TestimonialApproved)
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Testimonial, error) {
	return s.testimonials.ListAll(ctx)
}

// Moderate sets the review's visibility. Only approved and rejected are
// valid targets; content itself is immutable.
func (s *Service) Moderate(ctx context.Context, id int64, status domain.TestimonialStatus) error {
	if status != domain.TestimonialApproved && status != domain.TestimonialRejected {
		return ErrBadStatus
	}
	return s.testimonials.UpdateStatus(ctx, id, status)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.testimonials.Delete(ctx, id)
}
