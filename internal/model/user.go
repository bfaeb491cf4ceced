package model

// Account roles.
const (
	RoleAdmin       = "admin"
	RoleJe          = "je"
	RoleParticipant = "participant"
)

// User is an authenticated account — maps users. JeID is set for JE
// accounts, ParticipantID for participant accounts.
type User struct {
	UserID        string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Email         string  `gorm:"type:varchar(255);not null"                     json:"email"`
	PasswordHash  string  `gorm:"type:varchar(255);not null"                     json:"-"`
	Role          string  `gorm:"type:varchar(20);not null;default:'participant'" json:"role"`
	JeID          *string `gorm:"type:uuid"                                      json:"je_id,omitempty"`
	ParticipantID *string `gorm:"type:uuid"                                      json:"participant_id,omitempty"`
	BaseModel

	Je          *Je          `gorm:"foreignKey:JeID;references:JeID"                   json:"je,omitempty"`
	Participant *Participant `gorm:"foreignKey:ParticipantID;references:ParticipantID" json:"participant,omitempty"`
}

// TableName sets the table name.
func (User) TableName() string { return "users" }
