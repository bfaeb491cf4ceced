package dto

// ── JE module DTOs ──

// CreateJeRequest registers a Junior-Entreprise.
type CreateJeRequest struct {
	Name         string `json:"name"          binding:"required,min=2,max=100"`
	Code         string `json:"code"          binding:"required,min=2,max=20"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email"`
	ContactPhone string `json:"contact_phone" binding:"omitempty,max=30"`
}

// UpdateJeRequest patches a Junior-Entreprise.
type UpdateJeRequest struct {
	Name         *string `json:"name"          binding:"omitempty,min=2,max=100"`
	Code         *string `json:"code"          binding:"omitempty,min=2,max=20"`
	ContactEmail *string `json:"contact_email" binding:"omitempty,email"`
	ContactPhone *string `json:"contact_phone" binding:"omitempty,max=30"`
}

// JeResponse is the JE detail view. ReservedZone is resolved from the
// zone ownership mapping, not stored on the JE record.
type JeResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Code             string  `json:"code"`
	ContactEmail     string  `json:"contact_email,omitempty"`
	ContactPhone     string  `json:"contact_phone,omitempty"`
	ReservedZone     *string `json:"reserved_zone,omitempty"`
	ParticipantCount int64   `json:"participant_count"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}
