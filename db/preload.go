package db

import (
	log "github.com/sirupsen/logrus"

	"hiring-backend/models"
	dbmodels "hiring-backend/models/db"
)

var defaultStages = []dbmodels.StageDefinition{
	{Name: "HR Interview", StageOrder: 1, RequiredType: models.InterviewerTypeHR, Description: "Screening call with HR"},
	{Name: "Technical Round", StageOrder: 2, RequiredType: models.InterviewerTypeTechnical, Description: "Technical deep dive"},
	{Name: "Cultural Fit", StageOrder: 3, RequiredType: models.InterviewerTypeCultural, Description: "Team and culture fit"},
	{Name: "Final Round", StageOrder: 4, RequiredType: models.InterviewerTypeFinal, Description: "Final decision round"},
}

// InitPreload seeds the stage catalog on an empty database.
func InitPreload() {
	var count int64
	if err := DB.Model(&dbmodels.StageDefinition{}).Count(&count).Error; err != nil {
		log.WithError(err).Error("stage catalog check failed")
		return
	}
	if count > 0 {
		return
	}
	for _, stage := range defaultStages {
		if err := DB.Create(&stage).Error; err != nil {
			log.WithError(err).WithField("stage", stage.Name).Error("stage catalog seed failed")
			return
		}
	}
	log.Info("stage catalog seeded")
}
