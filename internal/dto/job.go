package dto

// ── job module DTOs ──

// CreateJobRequest registers a job offer.
type CreateJobRequest struct {
	Title        string `json:"title"         binding:"required,min=2,max=150"`
	Company      string `json:"company"       binding:"required,min=1,max=150"`
	Description  string `json:"description"   binding:"omitempty"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email"`
	Published    *bool  `json:"published"`
}

// UpdateJobRequest patches a job offer.
type UpdateJobRequest struct {
	Title        *string `json:"title"         binding:"omitempty,min=2,max=150"`
	Company      *string `json:"company"       binding:"omitempty,min=1,max=150"`
	Description  *string `json:"description"`
	ContactEmail *string `json:"contact_email" binding:"omitempty,email"`
	Published    *bool   `json:"published"`
}

// JobListRequest filters the job board.
type JobListRequest struct {
	All bool `form:"all"` // include unpublished offers (admin view)
}

// JobResponse is the job offer view.
type JobResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Company      string `json:"company"`
	Description  string `json:"description,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
	Published    bool   `json:"published"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}
