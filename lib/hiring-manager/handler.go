package hiringmanagerhandler

import (
	"hiring-backend/db"
	hiringmanagerstore "hiring-backend/lib/hiring-manager/store"
	"hiring-backend/models"
	staffapimodels "hiring-backend/models/api/staff"
	dbmodels "hiring-backend/models/db"
)

type Provider interface {
	Create(req staffapimodels.HiringManagerSaveRequest) (id string, err error)
	Update(id string, req staffapimodels.HiringManagerSaveRequest) error
	GetByID(id string) (*dbmodels.HiringManager, error)
	List() ([]dbmodels.HiringManager, error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store: hiringmanagerstore.NewInstance(db.DB),
	}
}

type impl struct {
	store hiringmanagerstore.Provider
}

func (i impl) Create(req staffapimodels.HiringManagerSaveRequest) (id string, err error) {
	existing, err := i.store.GetByEmail(req.Email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", models.NewConflict("a hiring manager with this email already exists")
	}
	return i.store.Create(dbmodels.HiringManager{
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
		Position:   req.Position,
	})
}

func (i impl) Update(id string, req staffapimodels.HiringManagerSaveRequest) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.NewNotFound("hiring manager not found")
	}
	existing, err := i.store.GetByEmail(req.Email)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != id {
		return models.NewConflict("a hiring manager with this email already exists")
	}
	return i.store.Update(id, map[string]interface{}{
		"name":       req.Name,
		"email":      req.Email,
		"department": req.Department,
		"position":   req.Position,
	})
}

func (i impl) GetByID(id string) (*dbmodels.HiringManager, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, models.NewNotFound("hiring manager not found")
	}
	return rec, nil
}

func (i impl) List() ([]dbmodels.HiringManager, error) {
	return i.store.List()
}

func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.NewNotFound("hiring manager not found")
	}
	return i.store.Delete(id)
}
