package dbmodels

import "hiring-backend/models"

type Applicant struct {
	BaseModel
	JobID       string `gorm:"type:varchar(36);index"`
	Job         *Job   `gorm:"foreignKey:JobID"`
	Name        string `gorm:"type:varchar(255)"`
	Email       string `gorm:"type:varchar(255);index"`
	Phone       string `gorm:"type:varchar(255)"`
	ResumeRef   string `gorm:"type:varchar(512)"` // object key in file storage, or raw text for manual entries
	Status      models.ApplicantStatus `gorm:"type:varchar(50);default:applied"`
	OfferStatus models.OfferStatus     `gorm:"type:varchar(50);default:pending"`
	AIResult    models.AIResult        `gorm:"type:varchar(50)"`
	AINotes     string
}
