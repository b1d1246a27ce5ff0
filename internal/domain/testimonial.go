package domain

import "time"

type TestimonialStatus string

const (
	TestimonialPending  TestimonialStatus = "pending"
	TestimonialApproved TestimonialStatus = "approved"
	TestimonialRejected TestimonialStatus = "rejected"
)

// Testimonial is a customer review. It always starts pending and only an
// admin transition to approved makes it publicly visible. ServiceName is
// free text, not a foreign key.
type Testimonial struct {
	ID          int64             `json:"id" gorm:"primaryKey"`
	Name        string            `json:"name" gorm:"not null" validate:"required"`
	Email       string            `json:"email" gorm:"not null" validate:"required,email"`
	Rating      int               `json:"rating" gorm:"not null" validate:"required,gte=1,lte=5"`
	Message     string            `json:"message" gorm:"not null;type:text" validate:"required"`
	ServiceName string            `json:"service_name"`
	Status      TestimonialStatus `json:"status" gorm:"not null;default:pending"`
	CreatedAt   time.Time         `json:"created_at"`
}
