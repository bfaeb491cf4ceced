package model

// Je is a Junior-Entreprise exhibiting at the seminar — maps jes.
// Its reserved zone is not stored here: zones.je_id is the single
// authoritative ownership mapping, queried when needed.
type Je struct {
	JeID         string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"je_id"`
	Name         string `gorm:"type:varchar(100);not null"                     json:"name"`
	Code         string `gorm:"type:varchar(20);not null"                      json:"code"`
	ContactEmail string `gorm:"type:varchar(255)"                              json:"contact_email,omitempty"`
	ContactPhone string `gorm:"type:varchar(30)"                               json:"contact_phone,omitempty"`
	BaseModel

	Participants []Participant `gorm:"foreignKey:JeID;references:JeID" json:"participants,omitempty"`
}

// TableName sets the table name.
func (Je) TableName() string { return "jes" }
