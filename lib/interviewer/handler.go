package interviewerhandler

import (
	"hiring-backend/db"
	interviewerstore "hiring-backend/lib/interviewer/store"
	"hiring-backend/models"
	staffapimodels "hiring-backend/models/api/staff"
	dbmodels "hiring-backend/models/db"
)

type Provider interface {
	Create(req staffapimodels.InterviewerSaveRequest) (id string, err error)
	Update(id string, req staffapimodels.InterviewerSaveRequest) error
	GetByID(id string) (*dbmodels.Interviewer, error)
	List(interviewType string) ([]dbmodels.Interviewer, error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store: interviewerstore.NewInstance(db.DB),
	}
}

type impl struct {
	store interviewerstore.Provider
}

func (i impl) Create(req staffapimodels.InterviewerSaveRequest) (id string, err error) {
	existing, err := i.store.GetByEmail(req.Email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", models.NewConflict("an interviewer with this email already exists")
	}
	return i.store.Create(dbmodels.Interviewer{
		Name:          req.Name,
		Email:         req.Email,
		FunctionArea:  req.FunctionArea,
		Position:      req.Position,
		InterviewType: req.InterviewType,
	})
}

func (i impl) Update(id string, req staffapimodels.InterviewerSaveRequest) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.NewNotFound("interviewer not found")
	}
	existing, err := i.store.GetByEmail(req.Email)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != id {
		return models.NewConflict("an interviewer with this email already exists")
	}
	return i.store.Update(id, map[string]interface{}{
		"name":           req.Name,
		"email":          req.Email,
		"function_area":  req.FunctionArea,
		"position":       req.Position,
		"interview_type": req.InterviewType,
	})
}

func (i impl) GetByID(id string) (*dbmodels.Interviewer, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, models.NewNotFound("interviewer not found")
	}
	return rec, nil
}

func (i impl) List(interviewType string) ([]dbmodels.Interviewer, error) {
	return i.store.List(interviewType)
}

func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.NewNotFound("interviewer not found")
	}
	return i.store.Delete(id)
}
