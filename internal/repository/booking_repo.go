package repository

import (
	"context"

	"gorm.io/gorm"

	"kikabraids/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create inserts the booking. The partial unique index on (date, time)
// rejects a second non-cancelled booking for the same slot; callers map the
// duplicate-key error to a conflict.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	tx := r.db.WithContext(ctx).First(&b, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &b, nil
}

// List returns all bookings, newest slot first.
func (r *BookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	out := make([]domain.Booking, 0)
	tx := r.db.WithContext(ctx).Order("date DESC, time DESC").Find(&out)
	return out, tx.Error
}

// SlotTaken reports whether a non-cancelled booking already holds the slot.
// Informational only: the unique index is the arbiter under races.
func (r *BookingRepository) SlotTaken(ctx context.Context, date, timeOfDay string) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("date = ? AND time = ? AND status <> ?", date, timeOfDay, domain.BookingCancelled).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Booking{}, id).Error
}

func (r *BookingRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&domain.Booking{}).Count(&cnt)
	return cnt, tx.Error
}

func (r *BookingRepository) CountByStatus(ctx context.Context, status domain.BookingStatus) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("status = ?", status).
		Count(&cnt)
	return cnt, tx.Error
}

// CompletedRevenue sums the denormalized price over completed bookings.
func (r *BookingRepository) CompletedRevenue(ctx context.Context) (int64, error) {
	var total int64
	tx := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("status = ?", domain.BookingCompleted).
		Select("COALESCE(SUM(price), 0)").
		Scan(&total)
	return total, tx.Error
}
