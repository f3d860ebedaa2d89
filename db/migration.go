package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "hiring-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	for _, model := range []interface{}{
		&dbmodels.User{},
		&dbmodels.Job{},
		&dbmodels.Applicant{},
		&dbmodels.StageDefinition{},
		&dbmodels.Interviewer{},
		&dbmodels.Interview{},
		&dbmodels.StageOutcome{},
		&dbmodels.HiringManager{},
		&dbmodels.Employee{},
		&dbmodels.Project{},
		&dbmodels.Timesheet{},
		&dbmodels.FileRecord{},
	} {
		if err := DB.AutoMigrate(model); err != nil {
			return errors.Wrapf(err, "migration failed for %T", model)
		}
	}
	log.Info("migrations finished")
	return nil
}
