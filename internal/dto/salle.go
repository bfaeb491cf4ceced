package dto

// ── salle module DTOs ──

// CreateSalleRequest registers a room.
type CreateSalleRequest struct {
	Name     string `json:"name"     binding:"required,min=1,max=100"`
	Capacity int    `json:"capacity" binding:"required,min=1"`
	Floor    string `json:"floor"    binding:"omitempty,max=20"`
}

// UpdateSalleRequest patches a room.
type UpdateSalleRequest struct {
	Name     *string `json:"name"     binding:"omitempty,min=1,max=100"`
	Capacity *int    `json:"capacity" binding:"omitempty,min=1"`
	Floor    *string `json:"floor"    binding:"omitempty,max=20"`
}

// SalleResponse is the room view.
type SalleResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Capacity  int    `json:"capacity"`
	Floor     string `json:"floor,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ── activity type DTOs ──

// CreateActivityTypeRequest registers an activity category.
type CreateActivityTypeRequest struct {
	Name        string `json:"name"        binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"omitempty"`
}

// UpdateActivityTypeRequest patches an activity category.
type UpdateActivityTypeRequest struct {
	Name        *string `json:"name"        binding:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
}

// ActivityTypeResponse is the activity category view.
type ActivityTypeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
