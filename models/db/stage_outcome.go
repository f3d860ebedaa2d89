package dbmodels

import (
	"time"

	"hiring-backend/models"
)

// StageOutcome is the per-stage result record, 1:1 with its Interview.
type StageOutcome struct {
	BaseModel
	InterviewID string           `gorm:"type:varchar(36);uniqueIndex"`
	Interview   *Interview       `gorm:"foreignKey:InterviewID"`
	StageID     string           `gorm:"type:varchar(36);index"`
	Stage       *StageDefinition `gorm:"foreignKey:StageID"`
	Result      models.StageResult `gorm:"type:varchar(50);default:pending"`
	Feedback    string
	Notes       string
	CompletedAt *time.Time

	// HR round only
	CurrentSalary     float64
	ExpectedSalary    float64
	NoticePeriodDays  int
	WillingToRelocate bool
	WillingToTravel   bool
}
