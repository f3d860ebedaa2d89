package projecthandler

import (
	"hiring-backend/db"
	employeestore "hiring-backend/lib/employee/store"
	projectstore "hiring-backend/lib/project/store"
	"hiring-backend/models"
	projectapimodels "hiring-backend/models/api/project"
	dbmodels "hiring-backend/models/db"
)

type Provider interface {
	Create(req projectapimodels.SaveRequest) (id string, err error)
	Update(id string, req projectapimodels.SaveRequest) error
	GetByID(id string) (*dbmodels.Project, error)
	List(status string) ([]dbmodels.Project, error)
	Assign(id string, employeeIDs []string) (*dbmodels.Project, error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store:     projectstore.NewInstance(db.DB),
		employees: employeestore.NewInstance(db.DB),
	}
}

type impl struct {
	store     projectstore.Provider
	employees employeestore.Provider
}

func (i impl) Create(req projectapimodels.SaveRequest) (id string, err error) {
	assignees, err := i.resolveEmployees(req.Assignees)
	if err != nil {
		return "", err
	}
	rec := dbmodels.Project{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		StartDate:   req.StartDate,
		Deadline:    req.Deadline,
		Progress:    req.Progress,
		Assignees:   assignees,
	}
	if rec.Status == "" {
		rec.Status = models.ProjectStatusPlanning
	}
	return i.store.Create(rec)
}

func (i impl) Update(id string, req projectapimodels.SaveRequest) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.NewNotFound("project not found")
	}
	updMap := map[string]interface{}{
		"name":        req.Name,
		"description": req.Description,
		"start_date":  req.StartDate,
		"deadline":    req.Deadline,
		"progress":    req.Progress,
	}
	if req.Status != "" {
		updMap["status"] = req.Status
	}
	if err = i.store.Update(id, updMap); err != nil {
		return err
	}
	if req.Assignees != nil {
		assignees, err := i.resolveEmployees(req.Assignees)
		if err != nil {
			return err
		}
		return i.store.ReplaceAssignees(id, assignees)
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.Project, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, models.NewNotFound("project not found")
	}
	return rec, nil
}

func (i impl) List(status string) ([]dbmodels.Project, error) {
	return i.store.List(status)
}

func (i impl) Assign(id string, employeeIDs []string) (*dbmodels.Project, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, models.NewNotFound("project not found")
	}
	assignees, err := i.resolveEmployees(employeeIDs)
	if err != nil {
		return nil, err
	}
	if err = i.store.ReplaceAssignees(id, assignees); err != nil {
		return nil, err
	}
	return i.GetByID(id)
}

func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.NewNotFound("project not found")
	}
	return i.store.Delete(id)
}

func (i impl) resolveEmployees(ids []string) ([]dbmodels.Employee, error) {
	assignees := make([]dbmodels.Employee, 0, len(ids))
	for _, employeeID := range ids {
		employee, err := i.employees.GetByID(employeeID)
		if err != nil {
			return nil, err
		}
		if employee == nil {
			return nil, models.NewNotFound("employee " + employeeID + " not found")
		}
		assignees = append(assignees, dbmodels.Employee{BaseModel: dbmodels.BaseModel{ID: employee.ID}})
	}
	return assignees, nil
}
