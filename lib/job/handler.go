package jobhandler

import (
	"hiring-backend/db"
	jobstore "hiring-backend/lib/job/store"
	"hiring-backend/models"
	jobapimodels "hiring-backend/models/api/job"
	dbmodels "hiring-backend/models/db"
)

type Provider interface {
	Create(req jobapimodels.SaveRequest) (id string, err error)
	Update(id string, req jobapimodels.SaveRequest) error
	GetByID(id string) (*dbmodels.Job, error)
	List(status string) ([]dbmodels.Job, error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store: jobstore.NewInstance(db.DB),
	}
}

type impl struct {
	store jobstore.Provider
}

func (i impl) Create(req jobapimodels.SaveRequest) (id string, err error) {
	rec := recFromRequest(req)
	if rec.Status == "" {
		rec.Status = models.JobStatusActive
	}
	if rec.HiringUrgency == "" {
		rec.HiringUrgency = models.UrgencyNormal
	}
	return i.store.Create(rec)
}

func (i impl) Update(id string, req jobapimodels.SaveRequest) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.NewNotFound("job not found")
	}
	updMap := map[string]interface{}{
		"title":                       req.Title,
		"grade":                       req.Grade,
		"hiring_manager":              req.HiringManager,
		"role_overview":               req.RoleOverview,
		"key_responsibilities":        req.KeyResponsibilities,
		"key_skills_and_competencies": req.KeySkillsAndCompetencies,
	}
	if req.HiringUrgency != "" {
		updMap["hiring_urgency"] = req.HiringUrgency
	}
	if req.FunctionType != "" {
		updMap["function_type"] = req.FunctionType
	}
	if req.Status != "" {
		updMap["status"] = req.Status
	}
	return i.store.Update(id, updMap)
}

func (i impl) GetByID(id string) (*dbmodels.Job, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, models.NewNotFound("job not found")
	}
	return rec, nil
}

func (i impl) List(status string) ([]dbmodels.Job, error) {
	return i.store.List(status)
}

func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.NewNotFound("job not found")
	}
	return i.store.Delete(id)
}

func recFromRequest(req jobapimodels.SaveRequest) dbmodels.Job {
	return dbmodels.Job{
		Title:                    req.Title,
		Grade:                    req.Grade,
		HiringManager:            req.HiringManager,
		HiringUrgency:            req.HiringUrgency,
		RoleOverview:             req.RoleOverview,
		KeyResponsibilities:      req.KeyResponsibilities,
		KeySkillsAndCompetencies: req.KeySkillsAndCompetencies,
		FunctionType:             req.FunctionType,
		Status:                   req.Status,
	}
}
