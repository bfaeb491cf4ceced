package model

// Salle is a room hosting activities — maps salles.
type Salle struct {
	SalleID  string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"salle_id"`
	Name     string `gorm:"type:varchar(100);not null"                     json:"name"`
	Capacity int    `gorm:"not null;default:0"                             json:"capacity"`
	Floor    string `gorm:"type:varchar(20)"                               json:"floor,omitempty"`
	BaseModel
}

// TableName sets the table name.
func (Salle) TableName() string { return "salles" }
