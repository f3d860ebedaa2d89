package timesheetstore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	timesheetapimodels "hiring-backend/models/api/timesheet"
	dbmodels "hiring-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Timesheet) (id string, err error)
	GetEntry(employeeID, projectID string, entryDate time.Time) (*dbmodels.Timesheet, error)
	UpdateHours(id string, hours float64) error
	MonthlySheet(employeeID string, month, year int) (list []dbmodels.Timesheet, err error)
	MonthlyUtilization(month, year int) (list []timesheetapimodels.UtilizationRow, err error)
	YearlyUtilization(employeeID string, year int) (list []timesheetapimodels.UtilizationRow, err error)
	Delete(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Timesheet) (id string, err error) {
	err = i.db.
		Omit("Employee", "Project").
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetEntry(employeeID, projectID string, entryDate time.Time) (*dbmodels.Timesheet, error) {
	rec := dbmodels.Timesheet{}
	err := i.db.
		Model(&dbmodels.Timesheet{}).
		Where("employee_id = ?", employeeID).
		Where("project_id = ?", projectID).
		Where("entry_date = ?", entryDate.Format("2006-01-02")).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) UpdateHours(id string, hours float64) error {
	return i.db.
		Model(&dbmodels.Timesheet{}).
		Where("id = ?", id).
		Update("hours", hours).
		Error
}

func (i impl) MonthlySheet(employeeID string, month, year int) (list []dbmodels.Timesheet, err error) {
	list = []dbmodels.Timesheet{}
	err = i.db.
		Model(&dbmodels.Timesheet{}).
		Where("employee_id = ?", employeeID).
		Where("month = ?", month).
		Where("year = ?", year).
		Preload("Project").
		Order("entry_date").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) MonthlyUtilization(month, year int) (list []timesheetapimodels.UtilizationRow, err error) {
	list = []timesheetapimodels.UtilizationRow{}
	err = i.db.
		Table("timesheets").
		Select("timesheets.employee_id as employee_id, employees.name as employee_name, "+
			"timesheets.month as month, sum(timesheets.hours) as total_hours").
		Joins("JOIN employees ON employees.id = timesheets.employee_id").
		Where("timesheets.month = ?", month).
		Where("timesheets.year = ?", year).
		Group("timesheets.employee_id, employees.name, timesheets.month").
		Order("employees.name").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) YearlyUtilization(employeeID string, year int) (list []timesheetapimodels.UtilizationRow, err error) {
	list = []timesheetapimodels.UtilizationRow{}
	err = i.db.
		Table("timesheets").
		Select("timesheets.employee_id as employee_id, employees.name as employee_name, "+
			"timesheets.month as month, sum(timesheets.hours) as total_hours").
		Joins("JOIN employees ON employees.id = timesheets.employee_id").
		Where("timesheets.employee_id = ?", employeeID).
		Where("timesheets.year = ?", year).
		Group("timesheets.employee_id, employees.name, timesheets.month").
		Order("timesheets.month").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	return i.db.
		Delete(&dbmodels.Timesheet{BaseModel: dbmodels.BaseModel{ID: id}}).
		Error
}
