package booking

import (
	"context"

	"kikabraids/internal/domain"
)

// BookingRepository defines the store operations for bookings, including the
// derived aggregates behind the stats endpoint.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context) ([]domain.Booking, error)
	SlotTaken(ctx context.Context, date, timeOfDay string) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status domain.BookingStatus) (int64, error)
	CompletedRevenue(ctx context.Context) (int64, error)
}

// ServiceRepository resolves the booked service so its name and price can be
// denormalized onto the booking.
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}
