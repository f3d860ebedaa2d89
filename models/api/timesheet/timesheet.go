package timesheetapimodels

import (
	"time"

	"github.com/pkg/errors"
)

type EntryRequest struct {
	EmployeeID string    `json:"employee_id"`
	ProjectID  string    `json:"project_id"`
	EntryDate  time.Time `json:"entry_date"`
	Hours      float64   `json:"hours"`
}

func (r EntryRequest) Validate() error {
	if r.EmployeeID == "" || r.ProjectID == "" {
		return errors.New("employee_id and project_id are required")
	}
	if r.EntryDate.IsZero() {
		return errors.New("entry_date is required")
	}
	if r.Hours < 0 || r.Hours > 8 {
		return errors.New("hours must be between 0 and 8")
	}
	return nil
}

type UtilizationRow struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Month        int     `json:"month,omitempty"`
	TotalHours   float64 `json:"total_hours"`
}
