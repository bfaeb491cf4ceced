package dto

// ── selection module DTOs ──

// SelectActivityRequest chooses an activity for a participant.
type SelectActivityRequest struct {
	ActivityID string `json:"activity_id" binding:"required,uuid"`
}

// SelectionResponse is one participant/activity link.
type SelectionResponse struct {
	ID           string       `json:"id"`
	ActivityID   string       `json:"activity_id"`
	Activity     *ActivityRef `json:"activity,omitempty"`
	CreatedAt    string       `json:"created_at"`
}

// SelectActivityResponse reports a successful selection plus the REQUIRES
// counterparts the participant still has to select explicitly.
type SelectActivityResponse struct {
	Selection          SelectionResponse `json:"selection"`
	RequiredActivities []ActivityRef     `json:"required_activities,omitempty"`
}

// EnsureRequiredResponse lists the selections created by the mandatory
// activity sweep.
type EnsureRequiredResponse struct {
	Created []ActivityRef `json:"created"`
}
