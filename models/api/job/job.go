package jobapimodels

import (
	"github.com/pkg/errors"

	"hiring-backend/models"
)

type SaveRequest struct {
	Title                    string               `json:"title"`
	Grade                    models.Grade         `json:"grade"`
	HiringManager            string               `json:"hiring_manager"`
	HiringUrgency            models.HiringUrgency `json:"hiring_urgency"`
	RoleOverview             string               `json:"role_overview"`
	KeyResponsibilities      string               `json:"key_responsibilities"`
	KeySkillsAndCompetencies string               `json:"key_skills_and_competencies"`
	FunctionType             models.FunctionArea  `json:"function_type"`
	Status                   models.JobStatus     `json:"status"`
}

func (r SaveRequest) Validate() error {
	if r.Title == "" || r.HiringManager == "" {
		return errors.New("title and hiring_manager are required")
	}
	if !r.Grade.Valid() {
		return errors.New("invalid grade value")
	}
	if r.FunctionType != "" && !r.FunctionType.Valid() {
		return errors.New("invalid function type value")
	}
	switch r.Status {
	case "", models.JobStatusActive, models.JobStatusPaused, models.JobStatusClosed:
	default:
		return errors.New("status must be either Active, Paused, or Closed")
	}
	return nil
}
