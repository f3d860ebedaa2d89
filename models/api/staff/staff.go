package staffapimodels

import (
	"net/mail"
	"time"

	"github.com/pkg/errors"

	"hiring-backend/models"
)

type InterviewerSaveRequest struct {
	Name          string                 `json:"name"`
	Email         string                 `json:"email"`
	FunctionArea  models.FunctionArea    `json:"function_area"`
	Position      string                 `json:"position"`
	InterviewType models.InterviewerType `json:"interview_type"`
}

func (r InterviewerSaveRequest) Validate() error {
	if r.Name == "" || r.Email == "" || r.Position == "" {
		return errors.New("name, email and position are required")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("invalid email address")
	}
	if !r.InterviewType.Valid() {
		return errors.New("interview_type must be one of HR, Technical, Cultural, Final")
	}
	if !r.FunctionArea.Valid() {
		return errors.New("invalid function_area")
	}
	return nil
}

type HiringManagerSaveRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Position   string `json:"position"`
}

func (r HiringManagerSaveRequest) Validate() error {
	if r.Name == "" || r.Email == "" {
		return errors.New("name and email are required")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("invalid email address")
	}
	return nil
}

type EmployeeSaveRequest struct {
	Name       string              `json:"name"`
	Email      string              `json:"email"`
	Phone      string              `json:"phone"`
	Department models.FunctionArea `json:"department"`
	JobTitle   string              `json:"job_title"`
	Grade      models.Grade        `json:"grade"`
	JoinDate   time.Time           `json:"join_date"`
}

func (r EmployeeSaveRequest) Validate() error {
	if r.Name == "" || r.Email == "" || r.Phone == "" || r.JobTitle == "" {
		return errors.New("name, email, phone and job_title are required")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("invalid email address")
	}
	if !r.Department.Valid() {
		return errors.New("invalid department")
	}
	if !r.Grade.Valid() {
		return errors.New("invalid grade")
	}
	return nil
}

type AvailabilityDay struct {
	Date        string         `json:"date"`
	IsAvailable bool           `json:"is_available"`
	Projects    []ProjectShort `json:"projects"`
}

type ProjectShort struct {
	ID     string               `json:"id"`
	Name   string               `json:"name"`
	Status models.ProjectStatus `json:"status"`
}

type AvailabilityView struct {
	EmployeeID   string              `json:"employee_id"`
	Name         string              `json:"name"`
	Department   models.FunctionArea `json:"department"`
	Availability []AvailabilityDay   `json:"availability"`
}
