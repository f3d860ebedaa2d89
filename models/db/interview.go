package dbmodels

import (
	"time"

	"hiring-backend/models"
)

// Interview is one scheduled meeting for exactly one stage attempt.
type Interview struct {
	BaseModel
	ApplicantID   string       `gorm:"type:varchar(36);index"`
	Applicant     *Applicant   `gorm:"foreignKey:ApplicantID"`
	InterviewerID string       `gorm:"type:varchar(36);index"`
	Interviewer   *Interviewer `gorm:"foreignKey:InterviewerID"`
	ScheduledAt   time.Time
	Status        models.InterviewStatus `gorm:"type:varchar(50);default:scheduled"`
	Feedback      string
	Outcome       *StageOutcome `gorm:"foreignKey:InterviewID"`
}
