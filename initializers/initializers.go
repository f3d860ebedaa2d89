package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"

	"hiring-backend/config"
	"hiring-backend/fiberlog"
	aiscreening "hiring-backend/lib/ai-screening"
	applicanthandler "hiring-backend/lib/applicant"
	authhandler "hiring-backend/lib/auth"
	employeehandler "hiring-backend/lib/employee"
	xlsexport "hiring-backend/lib/export/xls"
	filestorage "hiring-backend/lib/file-storage"
	hiringmanagerhandler "hiring-backend/lib/hiring-manager"
	interviewhandler "hiring-backend/lib/interview"
	interviewerhandler "hiring-backend/lib/interviewer"
	jobhandler "hiring-backend/lib/job"
	"hiring-backend/lib/notify"
	projecthandler "hiring-backend/lib/project"
	stagehandler "hiring-backend/lib/stage"
	timesheethandler "hiring-backend/lib/timesheet"
	connectionhub "hiring-backend/lib/ws/hub/connection-hub"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	connectionhub.Init()
	filestorage.NewHandler()
	if err := filestorage.Instance.EnsureBucket(ctx); err != nil {
		log.WithError(err).Warn("file storage bucket check failed")
	}
	xlsexport.NewHandler()
	aiscreening.NewHandler()
	notify.NewHandler(config.Conf.App.CompanyName)
	stagehandler.NewHandler()
	jobhandler.NewHandler()
	applicanthandler.NewHandler()
	interviewerhandler.NewHandler()
	hiringmanagerhandler.NewHandler()
	employeehandler.NewHandler()
	projecthandler.NewHandler()
	timesheethandler.NewHandler()
	authhandler.NewHandler()
	// depends on stage, notify and the stores above
	interviewhandler.NewHandler()
}
