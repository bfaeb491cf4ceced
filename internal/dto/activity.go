package dto

import "time"

// ── activity module DTOs ──

// CreateActivityRequest schedules an activity.
type CreateActivityRequest struct {
	Name             string    `json:"name"               binding:"required,min=2,max=150"`
	Description      string    `json:"description"        binding:"omitempty"`
	StartsAt         time.Time `json:"starts_at"          binding:"required"`
	EndsAt           time.Time `json:"ends_at"            binding:"required,gtfield=StartsAt"`
	Capacity         int       `json:"capacity"           binding:"required,min=1"`
	SalleID          *string   `json:"salle_id"           binding:"omitempty,uuid"`
	ActivityTypeID   *string   `json:"activity_type_id"   binding:"omitempty,uuid"`
	IsRequired       bool      `json:"is_required"`
	RequiredForRoles []string  `json:"required_for_roles" binding:"omitempty,dive,max=30"`
}

// UpdateActivityRequest patches an activity.
type UpdateActivityRequest struct {
	Name             *string    `json:"name"               binding:"omitempty,min=2,max=150"`
	Description      *string    `json:"description"`
	StartsAt         *time.Time `json:"starts_at"`
	EndsAt           *time.Time `json:"ends_at"`
	Capacity         *int       `json:"capacity"           binding:"omitempty,min=1"`
	SalleID          *string    `json:"salle_id"           binding:"omitempty,uuid"`
	ActivityTypeID   *string    `json:"activity_type_id"   binding:"omitempty,uuid"`
	IsRequired       *bool      `json:"is_required"`
	RequiredForRoles []string   `json:"required_for_roles" binding:"omitempty,dive,max=30"`
}

// ActivityResponse is the activity detail view.
type ActivityResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description,omitempty"`
	StartsAt         string   `json:"starts_at"`
	EndsAt           string   `json:"ends_at"`
	Capacity         int      `json:"capacity"`
	SalleID          *string  `json:"salle_id,omitempty"`
	SalleName        string   `json:"salle_name,omitempty"`
	ActivityTypeID   *string  `json:"activity_type_id,omitempty"`
	ActivityTypeName string   `json:"activity_type_name,omitempty"`
	IsRequired       bool     `json:"is_required"`
	RequiredForRoles []string `json:"required_for_roles,omitempty"`
	SelectionCount   int64    `json:"selection_count"`
}

// ActivityRef is the short activity reference embedded in correlation and
// selection responses.
type ActivityRef struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	StartsAt string `json:"starts_at,omitempty"`
}
