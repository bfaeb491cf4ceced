package model

// ActivityType categorizes activities (conference, workshop, ...) — maps
// activity_types.
type ActivityType struct {
	ActivityTypeID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"activity_type_id"`
	Name           string `gorm:"type:varchar(100);not null"                     json:"name"`
	Description    string `gorm:"type:text"                                      json:"description,omitempty"`
	BaseModel
}

// TableName sets the table name.
func (ActivityType) TableName() string { return "activity_types" }
