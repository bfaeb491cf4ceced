package model

// Correlation rules and the wildcard role scope.
const (
	RuleRequires = "REQUIRES"
	RuleExcludes = "EXCLUDES"
	RoleAll      = "ALL"
)

// ActivityCorrelation is a directional rule between two activities — maps
// activity_correlations. Role is ALL or a specific participant role; the
// rule only applies when the scope matches the selecting participant.
type ActivityCorrelation struct {
	CorrelationID    string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"correlation_id"`
	SourceActivityID string `gorm:"type:uuid;not null"                             json:"source_activity_id"`
	TargetActivityID string `gorm:"type:uuid;not null"                             json:"target_activity_id"`
	Rule             string `gorm:"type:varchar(10);not null"                      json:"rule"`
	Role             string `gorm:"type:varchar(30);not null;default:'ALL'"        json:"role"`
	BaseModel

	SourceActivity *Activity `gorm:"foreignKey:SourceActivityID;references:ActivityID" json:"source_activity,omitempty"`
	TargetActivity *Activity `gorm:"foreignKey:TargetActivityID;references:ActivityID" json:"target_activity,omitempty"`
}

// TableName sets the table name.
func (ActivityCorrelation) TableName() string { return "activity_correlations" }

// AppliesTo reports whether the correlation's role scope matches the given
// participant role.
func (c *ActivityCorrelation) AppliesTo(role string) bool {
	return c.Role == RoleAll || c.Role == role
}
