package catalog

import "kikabraids/internal/domain"

type CreateServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	Price       int64  `json:"price" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Category    string `json:"category" binding:"required"`
}

type UpdateServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	Price       int64  `json:"price" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Category    string `json:"category" binding:"required"`
}

// GroupedServices is the public catalog shape, partitioned by category.
type GroupedServices struct {
	Women []domain.Service `json:"women"`
	Men   []domain.Service `json:"men"`
}
