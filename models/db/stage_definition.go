package dbmodels

import "hiring-backend/models"

// StageDefinition is catalog reference data. Order is unique and compared
// relatively, gaps are allowed.
type StageDefinition struct {
	BaseModel
	Name         string                 `gorm:"type:varchar(255);uniqueIndex"`
	StageOrder   int                    `gorm:"uniqueIndex"`
	RequiredType models.InterviewerType `gorm:"type:varchar(50)"`
	Description  string
}
