package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"kikabraids/internal/domain"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

type Service struct {
	bookings BookingRepository
	services ServiceRepository
}

func NewService(bookings BookingRepository, services ServiceRepository) *Service {
	return &Service{
		bookings: bookings,
		services: services,
	}
}

// CheckAvailability reports whether the slot is free of non-cancelled
// bookings. Informational only: the insert in Create is the authoritative
// check and two callers may both see "available" for the same slot.
func (s *Service) CheckAvailability(ctx context.Context, date, timeOfDay string) (bool, error) {
	date, timeOfDay, err := normalizeSlot(date, timeOfDay)
	if err != nil {
		return false, err
	}

	taken, err := s.bookings.SlotTaken(ctx, date, timeOfDay)
	if err != nil {
		return false, err
	}
	return !taken, nil
}

// Create inserts the booking in pending state. The store's partial unique
// index on (date, time) decides slot conflicts; losing the race surfaces as
// ErrSlotTaken, the same way a plainly occupied slot does.
func (s *Service) Create(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	date, timeOfDay, err := normalizeSlot(req.Date, req.Time)
	if err != nil {
		return nil, err
	}

	b := &domain.Booking{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		ServiceID:   req.ServiceID,
		ServiceName: req.ServiceName,
		Price:       req.Price,
		Date:        date,
		Time:        timeOfDay,
		Notes:       req.Notes,
		Status:      domain.BookingPending,
	}

	// Clients may omit the denormalized copies; resolve them from the
	// catalog while the service still exists.
	if b.ServiceName == "" || b.Price == 0 {
		svc, err := s.services.GetByID(ctx, req.ServiceID)
		if err != nil {
			return nil, ErrValidation
		}
		if b.ServiceName == "" {
			b.ServiceName = svc.Name
		}
		if b.Price == 0 {
			b.Price = svc.Price
		}
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		if isDuplicateSlot(err) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.List(ctx)
}

// UpdateStatus applies an admin lifecycle transition: pending -> completed,
// or any non-cancelled state -> cancelled. Cancelling frees the slot.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	if !domain.ValidBookingStatus(status) {
		return ErrValidation
	}

	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if !allowedTransition(b.Status, status) {
		return ErrBadTransition
	}

	return s.bookings.UpdateStatus(ctx, id, status)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.bookings.Delete(ctx, id)
}

// Stats recomputes the dashboard aggregates on every call.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	pending, err := s.bookings.CountByStatus(ctx, domain.BookingPending)
	if err != nil {
		return nil, err
	}
	total, err := s.bookings.Count(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.bookings.CompletedRevenue(ctx)
	if err != nil {
		return nil, err
	}

	return &Stats{Pending: pending, Total: total, Revenue: revenue}, nil
}

func allowedTransition(from, to domain.BookingStatus) bool {
	if from == to {
		return true
	}
	switch to {
	case domain.BookingCompleted:
		return from == domain.BookingPending
	case domain.BookingCancelled:
		return from != domain.BookingCancelled
	}
	return false
}

// normalizeSlot validates the slot and reformats it into the canonical
// zero-padded layouts so that "9:00" and "09:00" name the same slot in the
// store's unique index.
func normalizeSlot(date, timeOfDay string) (string, string, error) {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return "", "", ErrValidation
	}
	t, err := time.Parse(timeLayout, timeOfDay)
	if err != nil {
		return "", "", ErrValidation
	}
	return d.Format(dateLayout), t.Format(timeLayout), nil
}

// isDuplicateSlot recognizes the unique-index rejection from either store.
// gorm translates driver errors when TranslateError is on; the postgres path
// is also matched directly, and a raw sqlite message is the last resort.
func isDuplicateSlot(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
