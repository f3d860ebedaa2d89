package dbmodels

import (
	"time"

	"hiring-backend/models"
)

type Project struct {
	BaseModel
	Name        string `gorm:"type:varchar(255)"`
	Description string
	Status      models.ProjectStatus `gorm:"type:varchar(50);default:Planning"`
	StartDate   time.Time
	Deadline    time.Time
	Progress    int        `gorm:"default:0"`
	Assignees   []Employee `gorm:"many2many:project_assignees;"`
}
