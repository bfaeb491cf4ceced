package model

// Job is a job offer presented at the seminar — maps jobs.
type Job struct {
	JobID        string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"job_id"`
	Title        string `gorm:"type:varchar(150);not null"                     json:"title"`
	Company      string `gorm:"type:varchar(150);not null"                     json:"company"`
	Description  string `gorm:"type:text"                                      json:"description,omitempty"`
	ContactEmail string `gorm:"type:varchar(255)"                              json:"contact_email,omitempty"`
	Published    bool   `gorm:"not null;default:true"                          json:"published"`
	BaseModel
}

// TableName sets the table name.
func (Job) TableName() string { return "jobs" }
