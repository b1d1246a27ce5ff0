package booking

type CreateBookingRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	ServiceID   int64  `json:"service_id" binding:"required"`
	ServiceName string `json:"service_name"`
	Price       int64  `json:"price"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Notes       string `json:"notes"`
}

type CheckAvailabilityRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

type AvailabilityResponse struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Stats are derived counts, recomputed from the store on every request.
type Stats struct {
	Pending int64 `json:"pending"`
	Total   int64 `json:"total"`
	Revenue int64 `json:"revenue"`
}
