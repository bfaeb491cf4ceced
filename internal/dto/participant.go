package dto

// ── participant module DTOs ──

// CreateParticipantRequest registers a participant under a JE.
type CreateParticipantRequest struct {
	JeID      string `json:"je_id"      binding:"required,uuid"`
	FirstName string `json:"first_name" binding:"required,min=1,max=100"`
	LastName  string `json:"last_name"  binding:"required,min=1,max=100"`
	Email     string `json:"email"      binding:"required,email"`
	Role      string `json:"role"       binding:"omitempty,max=30"`
}

// UpdateParticipantRequest patches a participant.
type UpdateParticipantRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,min=1,max=100"`
	LastName  *string `json:"last_name"  binding:"omitempty,min=1,max=100"`
	Email     *string `json:"email"      binding:"omitempty,email"`
	Role      *string `json:"role"       binding:"omitempty,max=30"`
}

// UpdatePaymentRequest records a payment state change (admin only).
type UpdatePaymentRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required,oneof=unpaid partial paid"`
}

// ParticipantResponse is the participant detail view.
type ParticipantResponse struct {
	ID            string  `json:"id"`
	JeID          string  `json:"je_id"`
	JeName        string  `json:"je_name,omitempty"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Email         string  `json:"email"`
	Role          string  `json:"role"`
	PaymentStatus string  `json:"payment_status"`
	PlaceName     *string `json:"place_name,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}
