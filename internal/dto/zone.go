package dto

// ── zone module DTOs ──

// GenerateZonesRequest bulk-creates zones (admin only). Count must be a
// positive multiple of the letter-pair unit.
type GenerateZonesRequest struct {
	Count int `json:"count" binding:"required,min=1"`
}

// AssignJeRequest is the admin override for zone ownership. An empty JeID
// releases the zone.
type AssignJeRequest struct {
	JeID string `json:"je_id" binding:"omitempty,uuid"`
}

// ZoneResponse is the zone list/detail view.
type ZoneResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	JeID      *string `json:"je_id,omitempty"`
	JeName    string  `json:"je_name,omitempty"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// ZoneDetailResponse adds the owning JE's roster.
type ZoneDetailResponse struct {
	ZoneResponse
	Participants []ParticipantResponse `json:"participants,omitempty"`
}

// ReserveZoneResponse reports the reservation outcome. AlreadyOwned marks
// the idempotent case where the JE already held the requested zone.
type ReserveZoneResponse struct {
	Zone         ZoneResponse `json:"zone"`
	AlreadyOwned bool         `json:"already_owned"`
	ReleasedZone *string      `json:"released_zone,omitempty"` // previous zone given up, if any
}

// PlaceStatsResponse aggregates a JE's placement state: the zone it owns,
// the paid-participant count bounding place numbers, and the occupied
// place names (no holder identities).
type PlaceStatsResponse struct {
	HasZone        bool     `json:"has_zone"`
	ZoneName       string   `json:"zone_name,omitempty"`
	PaidCount      int64    `json:"paid_count"`
	ReservedPlaces []string `json:"reserved_places"`
}

// ReservePlaceRequest claims a numbered place inside the JE's zone.
type ReservePlaceRequest struct {
	PlaceNumber int `json:"place_number" binding:"required,min=1"`
}
