package applicantapimodels

import (
	"net/mail"
	"strings"

	"github.com/pkg/errors"

	"hiring-backend/models"
	dbmodels "hiring-backend/models/db"
)

type CreateRequest struct {
	JobID     string `json:"job_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	ResumeRef string `json:"resume_ref"`
}

func (r CreateRequest) Validate() error {
	if r.Name == "" || r.Email == "" || r.Phone == "" || r.JobID == "" {
		return errors.New("name, email, phone and job_id are required")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("invalid email address")
	}
	return nil
}

type OfferDecisionRequest struct {
	Decision models.OfferStatus `json:"decision"`
}

func (r OfferDecisionRequest) Validate() error {
	if r.Decision != models.OfferStatusAccepted && r.Decision != models.OfferStatusRejected {
		return errors.New("decision must be accepted or rejected")
	}
	return nil
}

type View struct {
	ID          string                 `json:"id"`
	JobID       string                 `json:"job_id"`
	JobTitle    string                 `json:"job_title,omitempty"`
	Name        string                 `json:"name"`
	Email       string                 `json:"email"`
	Phone       string                 `json:"phone"`
	ResumeRef   string                 `json:"resume_ref,omitempty"`
	Status      models.ApplicantStatus `json:"status"`
	OfferStatus models.OfferStatus     `json:"offer_status"`
	AIResult    models.AIResult        `json:"ai_result,omitempty"`
}

func ToView(rec dbmodels.Applicant) View {
	v := View{
		ID:          rec.ID,
		JobID:       rec.JobID,
		Name:        rec.Name,
		Email:       rec.Email,
		Phone:       rec.Phone,
		ResumeRef:   rec.ResumeRef,
		Status:      rec.Status,
		OfferStatus: rec.OfferStatus,
		AIResult:    rec.AIResult,
	}
	if rec.Job != nil {
		v.JobTitle = strings.TrimSpace(rec.Job.Title)
	}
	return v
}
