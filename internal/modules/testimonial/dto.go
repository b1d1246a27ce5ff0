package testimonial

type CreateTestimonialRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Rating      int    `json:"rating" binding:"required"`
	Message     string `json:"message" binding:"required"`
	ServiceName string `json:"service_name"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
