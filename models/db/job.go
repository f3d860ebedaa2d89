package dbmodels

import "hiring-backend/models"

type Job struct {
	BaseModel
	Title                    string               `gorm:"type:varchar(255)"`
	Grade                    models.Grade         `gorm:"type:varchar(100)"`
	HiringManager            string               `gorm:"type:varchar(255)"`
	HiringUrgency            models.HiringUrgency `gorm:"type:varchar(100);default:Normal"`
	RoleOverview             string
	KeyResponsibilities      string
	KeySkillsAndCompetencies string
	FunctionType             models.FunctionArea `gorm:"type:varchar(100)"`
	Status                   models.JobStatus    `gorm:"type:varchar(50);default:Active"`
}
