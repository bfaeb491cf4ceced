package model

// Payment states. A participant may reserve a place once at least the
// first part of the fee is recorded.
const (
	PaymentUnpaid  = "unpaid"
	PaymentPartial = "partial"
	PaymentPaid    = "paid"
)

// Participant belongs to exactly one JE — maps participants.
// PlaceName is the derived "{zone}_{number}" slot; occupancy within a JE is
// read by scanning this column, backed by a partial unique index.
type Participant struct {
	ParticipantID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"participant_id"`
	JeID          string  `gorm:"type:uuid;not null"                             json:"je_id"`
	FirstName     string  `gorm:"type:varchar(100);not null"                     json:"first_name"`
	LastName      string  `gorm:"type:varchar(100);not null"                     json:"last_name"`
	Email         string  `gorm:"type:varchar(255);not null"                     json:"email"`
	Role          string  `gorm:"type:varchar(30);not null;default:'MEMBER'"     json:"role"`
	PaymentStatus string  `gorm:"type:varchar(10);not null;default:'unpaid'"     json:"payment_status"`
	PlaceName     *string `gorm:"type:varchar(20)"                               json:"place_name,omitempty"`
	BaseModel

	Je *Je `gorm:"foreignKey:JeID;references:JeID" json:"je,omitempty"`
}

// TableName sets the table name.
func (Participant) TableName() string { return "participants" }

// HasPaid reports whether at least the first payment part is recorded.
func (p *Participant) HasPaid() bool {
	return p.PaymentStatus == PaymentPartial || p.PaymentStatus == PaymentPaid
}
