package domain

import "time"

type ServiceCategory string

const (
	CategoryWomen ServiceCategory = "women"
	CategoryMen   ServiceCategory = "men"
)

// Service is a purchasable salon offering. Price is an integer in the
// shop's whole currency unit (Colombian pesos, no cents).
type Service struct {
	ID          int64           `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"not null" validate:"required"`
	Price       int64           `json:"price" gorm:"not null" validate:"required,gt=0"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Category    ServiceCategory `json:"category" gorm:"not null" validate:"required,oneof=women men"`
	CreatedAt   time.Time       `json:"created_at"`
}
