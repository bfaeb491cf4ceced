package model

import "time"

// Activity is a scheduled session of the seminar program — maps activities.
// RequiredForRoles limits the is_required flag to specific participant
// roles; empty means every role.
type Activity struct {
	ActivityID       string      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"activity_id"`
	Name             string      `gorm:"type:varchar(150);not null"                     json:"name"`
	Description      string      `gorm:"type:text"                                      json:"description,omitempty"`
	StartsAt         time.Time   `gorm:"not null"                                       json:"starts_at"`
	EndsAt           time.Time   `gorm:"not null"                                       json:"ends_at"`
	Capacity         int         `gorm:"not null;default:0"                             json:"capacity"`
	SalleID          *string     `gorm:"type:uuid"                                      json:"salle_id,omitempty"`
	ActivityTypeID   *string     `gorm:"type:uuid"                                      json:"activity_type_id,omitempty"`
	IsRequired       bool        `gorm:"not null;default:false"                         json:"is_required"`
	RequiredForRoles StringArray `gorm:"type:text[]"                                    json:"required_for_roles,omitempty"`
	BaseModel

	Salle        *Salle        `gorm:"foreignKey:SalleID;references:SalleID"                json:"salle,omitempty"`
	ActivityType *ActivityType `gorm:"foreignKey:ActivityTypeID;references:ActivityTypeID" json:"activity_type,omitempty"`
}

// TableName sets the table name.
func (Activity) TableName() string { return "activities" }

// RequiredFor reports whether the activity is mandatory for the given
// participant role.
func (a *Activity) RequiredFor(role string) bool {
	if !a.IsRequired {
		return false
	}
	return len(a.RequiredForRoles) == 0 || a.RequiredForRoles.Contains(role)
}
