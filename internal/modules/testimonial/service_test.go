package testimonial

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"kikabraids/internal/domain"
)

type MockTestimonialRepository struct {
	mock.Mock
}

func (m *MockTestimonialRepository) Create(ctx context.Context, t *domain.Testimonial) error {
	args := m.Called(ctx, t)
	if t != nil && args.Error(0) == nil {
		t.ID = 1
	}
	return args.Error(0)
}

func (m *MockTestimonialRepository) ListByStatus(ctx context.Context, status domain.TestimonialStatus) ([]domain.Testimonial, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Testimonial), args.Error(1)
}

func (m *MockTestimonialRepository) ListAll(ctx context.Context) ([]domain.Testimonial, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Testimonial), args.Error(1)
}

func (m *MockTestimonialRepository) UpdateStatus(ctx context.Context, id int64, status domain.TestimonialStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockTestimonialRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_Create_StartsPending(t *testing.T) {
	repo := new(MockTestimonialRepository)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Testimonial")).Return(nil)

	out, err := svc.Create(context.Background(), CreateTestimonialRequest{
		Name:        "Luisa",
		Email:       "luisa@x.com",
		Rating:      5,
		Message:     "Quedé encantada con mis trenzas",
		ServiceName: "Box Braids",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.TestimonialPending, out.Status)
	repo.AssertExpectations(t)
}

func TestService_Create_RatingOutOfRange(t *testing.T) {
	repo := new(MockTestimonialRepository)
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateTestimonialRequest{
		Name:    "Luisa",
		Email:   "luisa@x.com",
		Rating:  6,
		Message: "ok",
	})

	assert.ErrorIs(t, err, ErrValidation)
	repo.AssertNotCalled(t, "Create")
}

func TestService_ListPublic_OnlyApproved(t *testing.T) {
	repo := new(MockTestimonialRepository)
	svc := NewService(repo)

	repo.On("ListByStatus", mock.Anything, domain.TestimonialApproved).
		Return([]domain.Testimonial{{ID: 2, Status: domain.TestimonialApproved}}, nil)

	out, err := svc.ListPublic(context.Background())

	assert.NoError(t, err)
	assert.Len(t, out, 1)
	repo.AssertExpectations(t)
}

func TestService_Moderate(t *testing.T) {
	repo := new(MockTestimonialRepository)
	svc := NewService(repo)

	repo.On("UpdateStatus", mock.Anything, int64(3), domain.TestimonialApproved).Return(nil)

	assert.NoError(t, svc.Moderate(context.Background(), 3, domain.TestimonialApproved))
	assert.ErrorIs(t, svc.Moderate(context.Background(), 3, "pending"), ErrBadStatus)
	assert.ErrorIs(t, svc.Moderate(context.Background(), 3, "featured"), ErrBadStatus)
}
