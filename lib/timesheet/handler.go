package timesheethandler

import (
	"bytes"
	"fmt"
	"time"

	"hiring-backend/db"
	employeestore "hiring-backend/lib/employee/store"
	xlsexport "hiring-backend/lib/export/xls"
	projectstore "hiring-backend/lib/project/store"
	timesheetstore "hiring-backend/lib/timesheet/store"
	"hiring-backend/models"
	timesheetapimodels "hiring-backend/models/api/timesheet"
	dbmodels "hiring-backend/models/db"
)

type Provider interface {
	UpsertEntry(req timesheetapimodels.EntryRequest) (*dbmodels.Timesheet, error)
	MonthlySheet(employeeID string, month, year int) ([]dbmodels.Timesheet, error)
	MonthlyUtilization(month, year int) ([]timesheetapimodels.UtilizationRow, error)
	YearlyUtilization(employeeID string, year int) ([]timesheetapimodels.UtilizationRow, error)
	ExportUtilizationXLSX(month, year int) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store:     timesheetstore.NewInstance(db.DB),
		employees: employeestore.NewInstance(db.DB),
		projects:  projectstore.NewInstance(db.DB),
		exporter:  xlsexport.Instance,
	}
}

type impl struct {
	store     timesheetstore.Provider
	employees employeestore.Provider
	projects  projectstore.Provider
	exporter  xlsexport.Provider
}

// UpsertEntry writes the hours for one employee/project/day. A second write
// for the same day updates the existing entry instead of duplicating it.
func (i impl) UpsertEntry(req timesheetapimodels.EntryRequest) (*dbmodels.Timesheet, error) {
	employee, err := i.employees.GetByID(req.EmployeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, models.NewNotFound("employee not found")
	}
	project, err := i.projects.GetByID(req.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, models.NewNotFound("project not found")
	}
	entryDate := truncateDay(req.EntryDate)
	existing, err := i.store.GetEntry(req.EmployeeID, req.ProjectID, entryDate)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if err = i.store.UpdateHours(existing.ID, req.Hours); err != nil {
			return nil, err
		}
		existing.Hours = req.Hours
		return existing, nil
	}
	rec := dbmodels.Timesheet{
		EmployeeID: req.EmployeeID,
		ProjectID:  req.ProjectID,
		EntryDate:  entryDate,
		Hours:      req.Hours,
		Month:      int(entryDate.Month()),
		Year:       entryDate.Year(),
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return nil, err
	}
	rec.ID = id
	return &rec, nil
}

func (i impl) MonthlySheet(employeeID string, month, year int) ([]dbmodels.Timesheet, error) {
	if err := checkPeriod(month, year); err != nil {
		return nil, err
	}
	employee, err := i.employees.GetByID(employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, models.NewNotFound("employee not found")
	}
	return i.store.MonthlySheet(employeeID, month, year)
}

func (i impl) MonthlyUtilization(month, year int) ([]timesheetapimodels.UtilizationRow, error) {
	if err := checkPeriod(month, year); err != nil {
		return nil, err
	}
	return i.store.MonthlyUtilization(month, year)
}

func (i impl) YearlyUtilization(employeeID string, year int) ([]timesheetapimodels.UtilizationRow, error) {
	if err := checkPeriod(1, year); err != nil {
		return nil, err
	}
	employee, err := i.employees.GetByID(employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, models.NewNotFound("employee not found")
	}
	return i.store.YearlyUtilization(employeeID, year)
}

func (i impl) ExportUtilizationXLSX(month, year int) (*bytes.Buffer, error) {
	list, err := i.MonthlyUtilization(month, year)
	if err != nil {
		return nil, err
	}
	return i.exporter.ExportUtilization(list, fmt.Sprintf("Utilization %02d.%d", month, year))
}

func checkPeriod(month, year int) error {
	if month < 1 || month > 12 {
		return models.NewInvalidTransition("month must be between 1 and 12")
	}
	if year < 2000 || year > 2100 {
		return models.NewInvalidTransition("year is out of range")
	}
	return nil
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
