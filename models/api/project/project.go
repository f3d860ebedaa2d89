package projectapimodels

import (
	"time"

	"github.com/pkg/errors"

	"hiring-backend/models"
)

type SaveRequest struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Status      models.ProjectStatus `json:"status"`
	StartDate   time.Time            `json:"start_date"`
	Deadline    time.Time            `json:"deadline"`
	Progress    int                  `json:"progress"`
	Assignees   []string             `json:"assignees"`
}

func (r SaveRequest) Validate() error {
	if r.Name == "" || r.Description == "" {
		return errors.New("name and description are required")
	}
	if r.StartDate.IsZero() || r.Deadline.IsZero() {
		return errors.New("start_date and deadline are required")
	}
	if r.Deadline.Before(r.StartDate) {
		return errors.New("deadline must not precede start_date")
	}
	if r.Progress < 0 || r.Progress > 100 {
		return errors.New("progress must be between 0 and 100")
	}
	return nil
}

type AssignRequest struct {
	EmployeeIDs []string `json:"employee_ids"`
}

func (r AssignRequest) Validate() error {
	if len(r.EmployeeIDs) == 0 {
		return errors.New("employee_ids are required")
	}
	return nil
}
