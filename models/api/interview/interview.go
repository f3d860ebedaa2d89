package interviewapimodels

import (
	"time"

	"github.com/pkg/errors"

	"hiring-backend/models"
	dbmodels "hiring-backend/models/db"
)

type ScheduleRequest struct {
	ApplicantID   string    `json:"applicant_id"`
	InterviewerID string    `json:"interviewer_id"`
	StageID       string    `json:"stage_id"`
	ScheduledAt   time.Time `json:"scheduled_at"`
}

func (r ScheduleRequest) Validate() error {
	if r.ApplicantID == "" || r.InterviewerID == "" || r.StageID == "" {
		return errors.New("applicant_id, interviewer_id and stage_id are required")
	}
	if r.ScheduledAt.IsZero() {
		return errors.New("scheduled_at is required")
	}
	return nil
}

type OutcomeRequest struct {
	Result   models.StageResult `json:"result"`
	Feedback string             `json:"feedback"`
	Notes    string             `json:"notes"`

	// HR round only
	CurrentSalary     float64 `json:"current_salary,omitempty"`
	ExpectedSalary    float64 `json:"expected_salary,omitempty"`
	NoticePeriodDays  int     `json:"notice_period_days,omitempty"`
	WillingToRelocate bool    `json:"willing_to_relocate,omitempty"`
	WillingToTravel   bool    `json:"willing_to_travel,omitempty"`
}

func (r OutcomeRequest) Validate() error {
	switch r.Result {
	case models.StageResultPending, models.StageResultPass, models.StageResultFail:
		return nil
	}
	return errors.New("result must be pending, pass or fail")
}

type StageView struct {
	ID           string                 `json:"id"`
	Name         string                 `json:"name"`
	StageOrder   int                    `json:"stage_order"`
	RequiredType models.InterviewerType `json:"required_type"`
	Description  string                 `json:"description,omitempty"`
}

func ToStageView(rec dbmodels.StageDefinition) StageView {
	return StageView{
		ID:           rec.ID,
		Name:         rec.Name,
		StageOrder:   rec.StageOrder,
		RequiredType: rec.RequiredType,
		Description:  rec.Description,
	}
}

type OutcomeView struct {
	ID          string             `json:"id"`
	StageID     string             `json:"stage_id"`
	StageName   string             `json:"stage_name,omitempty"`
	Result      models.StageResult `json:"result"`
	Feedback    string             `json:"feedback,omitempty"`
	Notes       string             `json:"notes,omitempty"`
	CompletedAt *time.Time         `json:"completed_at,omitempty"`

	CurrentSalary     float64 `json:"current_salary,omitempty"`
	ExpectedSalary    float64 `json:"expected_salary,omitempty"`
	NoticePeriodDays  int     `json:"notice_period_days,omitempty"`
	WillingToRelocate bool    `json:"willing_to_relocate,omitempty"`
	WillingToTravel   bool    `json:"willing_to_travel,omitempty"`
}

func ToOutcomeView(rec dbmodels.StageOutcome) OutcomeView {
	v := OutcomeView{
		ID:                rec.ID,
		StageID:           rec.StageID,
		Result:            rec.Result,
		Feedback:          rec.Feedback,
		Notes:             rec.Notes,
		CompletedAt:       rec.CompletedAt,
		CurrentSalary:     rec.CurrentSalary,
		ExpectedSalary:    rec.ExpectedSalary,
		NoticePeriodDays:  rec.NoticePeriodDays,
		WillingToRelocate: rec.WillingToRelocate,
		WillingToTravel:   rec.WillingToTravel,
	}
	if rec.Stage != nil {
		v.StageName = rec.Stage.Name
	}
	return v
}

type View struct {
	ID              string                 `json:"id"`
	ApplicantID     string                 `json:"applicant_id"`
	ApplicantName   string                 `json:"applicant_name,omitempty"`
	ApplicantStatus models.ApplicantStatus `json:"applicant_status,omitempty"`
	InterviewerID   string                 `json:"interviewer_id"`
	InterviewerName string                 `json:"interviewer_name,omitempty"`
	InterviewerType models.InterviewerType `json:"interviewer_type,omitempty"`
	ScheduledAt     time.Time              `json:"scheduled_at"`
	Status          models.InterviewStatus `json:"status"`
	Feedback        string                 `json:"feedback,omitempty"`
	Outcome         *OutcomeView           `json:"outcome,omitempty"`
	Stage           *StageView             `json:"stage,omitempty"`
}

func ToView(rec dbmodels.Interview) View {
	v := View{
		ID:            rec.ID,
		ApplicantID:   rec.ApplicantID,
		InterviewerID: rec.InterviewerID,
		ScheduledAt:   rec.ScheduledAt,
		Status:        rec.Status,
		Feedback:      rec.Feedback,
	}
	if rec.Applicant != nil {
		v.ApplicantName = rec.Applicant.Name
		v.ApplicantStatus = rec.Applicant.Status
	}
	if rec.Interviewer != nil {
		v.InterviewerName = rec.Interviewer.Name
		v.InterviewerType = rec.Interviewer.InterviewType
	}
	if rec.Outcome != nil {
		outcome := ToOutcomeView(*rec.Outcome)
		v.Outcome = &outcome
		if rec.Outcome.Stage != nil {
			stage := ToStageView(*rec.Outcome.Stage)
			v.Stage = &stage
		}
	}
	return v
}

type ProposalView struct {
	NextStage *StageView `json:"next_stage,omitempty"`
	Completed bool       `json:"completed"`
}

type StageStatsView struct {
	StageID   string `json:"stage_id"`
	StageName string `json:"stage_name"`
	Total     int64  `json:"total"`
	Passed    int64  `json:"passed"`
	Failed    int64  `json:"failed"`
	Pending   int64  `json:"pending"`
}
