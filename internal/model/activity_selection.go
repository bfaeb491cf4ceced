package model

// ActivitySelection links a participant to a chosen activity — maps
// activity_selections, unique per (participant, activity).
type ActivitySelection struct {
	SelectionID   string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"selection_id"`
	ParticipantID string `gorm:"type:uuid;not null"                             json:"participant_id"`
	ActivityID    string `gorm:"type:uuid;not null"                             json:"activity_id"`
	BaseModel

	Participant *Participant `gorm:"foreignKey:ParticipantID;references:ParticipantID" json:"participant,omitempty"`
	Activity    *Activity    `gorm:"foreignKey:ActivityID;references:ActivityID"       json:"activity,omitempty"`
}

// TableName sets the table name.
func (ActivitySelection) TableName() string { return "activity_selections" }
