package dbmodels

import "hiring-backend/models"

type Interviewer struct {
	BaseModel
	Name          string                 `gorm:"type:varchar(255)"`
	Email         string                 `gorm:"type:varchar(255);uniqueIndex"`
	FunctionArea  models.FunctionArea    `gorm:"type:varchar(100)"`
	Position      string                 `gorm:"type:varchar(255)"`
	InterviewType models.InterviewerType `gorm:"type:varchar(50)"`
}
