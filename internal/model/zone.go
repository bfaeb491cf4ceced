package model

// Zone is a reservable exhibition area — maps zones. JeID is the single
// authoritative ownership pointer; a partial unique index on it enforces
// one zone per JE at the store level.
type Zone struct {
	ZoneID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"zone_id"`
	Name   string  `gorm:"type:varchar(10);not null"                      json:"name"`
	JeID   *string `gorm:"type:uuid"                                      json:"je_id,omitempty"`
	BaseModel

	Je *Je `gorm:"foreignKey:JeID;references:JeID" json:"je,omitempty"`
}

// TableName sets the table name.
func (Zone) TableName() string { return "zones" }
