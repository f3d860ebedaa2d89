package dbmodels

import (
	"time"

	"hiring-backend/models"
)

type Employee struct {
	BaseModel
	Name       string              `gorm:"type:varchar(255)"`
	Email      string              `gorm:"type:varchar(255);uniqueIndex"`
	Phone      string              `gorm:"type:varchar(255)"`
	Department models.FunctionArea `gorm:"type:varchar(100)"`
	JobTitle   string              `gorm:"type:varchar(255)"`
	Grade      models.Grade        `gorm:"type:varchar(100)"`
	JoinDate   time.Time
	Projects   []Project `gorm:"many2many:project_assignees;"`
}
