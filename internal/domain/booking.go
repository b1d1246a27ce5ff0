package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// ValidBookingStatus reports whether s is one of the known lifecycle states.
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingPending, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// Booking is a reserved appointment for a single (date, time) slot.
// ServiceName and Price are denormalized from the service at creation time
// so the record stays meaningful after the service is edited or deleted.
type Booking struct {
	ID          int64         `json:"id" gorm:"primaryKey"`
	Name        string        `json:"name" gorm:"not null" validate:"required"`
	Email       string        `json:"email" gorm:"not null" validate:"required,email"`
	Phone       string        `json:"phone" gorm:"not null" validate:"required"`
	ServiceID   int64         `json:"service_id" gorm:"not null" validate:"required"`
	ServiceName string        `json:"service_name" gorm:"not null"`
	Price       int64         `json:"price" gorm:"not null"`
	Date        string        `json:"date" gorm:"not null;index:idx_booking_date" validate:"required"`
	Time        string        `json:"time" gorm:"not null" validate:"required"`
	Notes       string        `json:"notes"`
	Status      BookingStatus `json:"status" gorm:"not null;default:pending"`
	CreatedAt   time.Time     `json:"created_at"`
}
