package dto

// ── correlation module DTOs ──

// CreateCorrelationRequest links two activities with a rule (admin only).
type CreateCorrelationRequest struct {
	SourceActivityID string `json:"source_activity_id" binding:"required,uuid"`
	TargetActivityID string `json:"target_activity_id" binding:"required,uuid"`
	Rule             string `json:"rule"               binding:"required,oneof=REQUIRES EXCLUDES"`
	Role             string `json:"role"               binding:"omitempty,max=30"`
}

// CorrelationResponse is the correlation view enriched with both activity
// records for display.
type CorrelationResponse struct {
	ID             string       `json:"id"`
	Rule           string       `json:"rule"`
	Role           string       `json:"role"`
	SourceActivity *ActivityRef `json:"source_activity,omitempty"`
	TargetActivity *ActivityRef `json:"target_activity,omitempty"`
	CreatedAt      string       `json:"created_at"`
}
