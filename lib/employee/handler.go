package employeehandler

import (
	"time"

	"hiring-backend/db"
	employeestore "hiring-backend/lib/employee/store"
	"hiring-backend/models"
	staffapimodels "hiring-backend/models/api/staff"
	dbmodels "hiring-backend/models/db"
)

type Provider interface {
	Create(req staffapimodels.EmployeeSaveRequest) (id string, err error)
	Update(id string, req staffapimodels.EmployeeSaveRequest) error
	GetByID(id string) (*dbmodels.Employee, error)
	List(department string) ([]dbmodels.Employee, error)
	Delete(id string) error
	Availability(id string, from, to time.Time) (staffapimodels.AvailabilityView, error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store: employeestore.NewInstance(db.DB),
	}
}

type impl struct {
	store employeestore.Provider
}

func (i impl) Create(req staffapimodels.EmployeeSaveRequest) (id string, err error) {
	existing, err := i.store.GetByEmail(req.Email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", models.NewConflict("an employee with this email already exists")
	}
	return i.store.Create(dbmodels.Employee{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Department: req.Department,
		JobTitle:   req.JobTitle,
		Grade:      req.Grade,
		JoinDate:   req.JoinDate,
	})
}

func (i impl) Update(id string, req staffapimodels.EmployeeSaveRequest) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.NewNotFound("employee not found")
	}
	existing, err := i.store.GetByEmail(req.Email)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != id {
		return models.NewConflict("an employee with this email already exists")
	}
	return i.store.Update(id, map[string]interface{}{
		"name":       req.Name,
		"email":      req.Email,
		"phone":      req.Phone,
		"department": req.Department,
		"job_title":  req.JobTitle,
		"grade":      req.Grade,
		"join_date":  req.JoinDate,
	})
}

func (i impl) GetByID(id string) (*dbmodels.Employee, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, models.NewNotFound("employee not found")
	}
	return rec, nil
}

func (i impl) List(department string) ([]dbmodels.Employee, error) {
	return i.store.List(department)
}

func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.NewNotFound("employee not found")
	}
	return i.store.Delete(id)
}

// Availability walks the date range day by day. A day is free when no
// assigned project runs over it (start date through deadline, inclusive).
func (i impl) Availability(id string, from, to time.Time) (view staffapimodels.AvailabilityView, err error) {
	if to.Before(from) {
		return view, models.NewInvalidTransition("end date must not precede start date")
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return view, err
	}
	if rec == nil {
		return view, models.NewNotFound("employee not found")
	}
	view = staffapimodels.AvailabilityView{
		EmployeeID:   rec.ID,
		Name:         rec.Name,
		Department:   rec.Department,
		Availability: []staffapimodels.AvailabilityDay{},
	}
	from = truncateDay(from)
	to = truncateDay(to)
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		busy := []staffapimodels.ProjectShort{}
		for _, p := range rec.Projects {
			if coversDay(p, day) {
				busy = append(busy, staffapimodels.ProjectShort{
					ID:     p.ID,
					Name:   p.Name,
					Status: p.Status,
				})
			}
		}
		view.Availability = append(view.Availability, staffapimodels.AvailabilityDay{
			Date:        day.Format("2006-01-02"),
			IsAvailable: len(busy) == 0,
			Projects:    busy,
		})
	}
	return view, nil
}

func coversDay(p dbmodels.Project, day time.Time) bool {
	start := truncateDay(p.StartDate)
	end := truncateDay(p.Deadline)
	return !day.Before(start) && !day.After(end)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
