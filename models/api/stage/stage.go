package stageapimodels

import (
	"github.com/pkg/errors"

	"hiring-backend/models"
)

type SaveRequest struct {
	Name         string                 `json:"name"`
	StageOrder   int                    `json:"stage_order"`
	RequiredType models.InterviewerType `json:"required_type"`
	Description  string                 `json:"description"`
}

func (r SaveRequest) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	if r.StageOrder <= 0 {
		return errors.New("stage_order must be positive")
	}
	if !r.RequiredType.Valid() {
		return errors.New("required_type must be one of HR, Technical, Cultural, Final")
	}
	return nil
}
