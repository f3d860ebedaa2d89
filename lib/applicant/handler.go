package applicanthandler

import (
	"bytes"
	"context"

	log "github.com/sirupsen/logrus"

	"hiring-backend/db"
	aiscreening "hiring-backend/lib/ai-screening"
	applicantstore "hiring-backend/lib/applicant/store"
	xlsexport "hiring-backend/lib/export/xls"
	filestorage "hiring-backend/lib/file-storage"
	jobstore "hiring-backend/lib/job/store"
	"hiring-backend/models"
	applicantapimodels "hiring-backend/models/api/applicant"
	dbmodels "hiring-backend/models/db"
)

type Provider interface {
	Create(req applicantapimodels.CreateRequest) (view applicantapimodels.View, err error)
	GetByID(id string) (view applicantapimodels.View, err error)
	List(jobID, status string) ([]applicantapimodels.View, error)
	Delete(id string) error
	ScreenResume(ctx context.Context, id string) (view applicantapimodels.View, err error)
	ExportXLSX(jobID, status string) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store:     applicantstore.NewInstance(db.DB),
		jobs:      jobstore.NewInstance(db.DB),
		screening: aiscreening.Instance,
		exporter:  xlsexport.Instance,
	}
}

type impl struct {
	store     applicantstore.Provider
	jobs      jobstore.Provider
	screening aiscreening.Provider
	exporter  xlsexport.Provider
}

func (i impl) Create(req applicantapimodels.CreateRequest) (view applicantapimodels.View, err error) {
	job, err := i.jobs.GetByID(req.JobID)
	if err != nil {
		return view, err
	}
	if job == nil {
		return view, models.NewNotFound("job not found")
	}
	if job.Status != models.JobStatusActive {
		return view, models.NewInvalidTransition("job is not open for applications")
	}
	existing, err := i.store.GetByEmailAndJob(req.Email, req.JobID)
	if err != nil {
		return view, err
	}
	if existing != nil {
		return view, models.NewConflict("this applicant already applied for the job")
	}
	id, err := i.store.Create(dbmodels.Applicant{
		JobID:     req.JobID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		ResumeRef: req.ResumeRef,
		Status:    models.ApplicantStatusApplied,
	})
	if err != nil {
		return view, err
	}
	return i.GetByID(id)
}

func (i impl) GetByID(id string) (view applicantapimodels.View, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return view, err
	}
	if rec == nil {
		return view, models.NewNotFound("applicant not found")
	}
	return applicantapimodels.ToView(*rec), nil
}

func (i impl) List(jobID, status string) ([]applicantapimodels.View, error) {
	list, err := i.store.List(jobID, status)
	if err != nil {
		return nil, err
	}
	views := make([]applicantapimodels.View, 0, len(list))
	for _, rec := range list {
		views = append(views, applicantapimodels.ToView(rec))
	}
	return views, nil
}

func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.NewNotFound("applicant not found")
	}
	return i.store.Delete(id)
}

// ScreenResume runs the resume through the screening model and stores the
// verdict. The resume body comes from file storage when uploaded, otherwise
// from the raw reference text.
func (i impl) ScreenResume(ctx context.Context, id string) (view applicantapimodels.View, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return view, err
	}
	if rec == nil {
		return view, models.NewNotFound("applicant not found")
	}
	if rec.Job == nil {
		return view, models.NewNotFound("job not found")
	}
	resumeText := rec.ResumeRef
	if filestorage.Instance != nil {
		if _, body, fErr := filestorage.Instance.GetResume(ctx, id); fErr == nil {
			resumeText = string(body)
		}
	}
	if resumeText == "" {
		return view, models.NewInvalidTransition("applicant has no resume to screen")
	}
	result, notes, err := i.screening.ScreenResume(*rec.Job, resumeText)
	if err != nil {
		return view, err
	}
	err = i.store.Update(id, map[string]interface{}{
		"ai_result": result,
		"ai_notes":  notes,
	})
	if err != nil {
		return view, err
	}
	log.WithField("applicant_id", id).WithField("verdict", result).Info("resume screening done")
	return i.GetByID(id)
}

func (i impl) ExportXLSX(jobID, status string) (*bytes.Buffer, error) {
	list, err := i.store.List(jobID, status)
	if err != nil {
		return nil, err
	}
	return i.exporter.ExportApplicantList(list)
}
