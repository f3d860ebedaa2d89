package interviewstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "hiring-backend/models/db"
)

type Provider interface {
	CreateWithOutcome(interview dbmodels.Interview, outcome dbmodels.StageOutcome) (interviewID string, err error)
	GetByID(id string) (*dbmodels.Interview, error)
	ListByApplicant(applicantID string) (list []dbmodels.Interview, err error)
	ListByJob(jobID string) (list []dbmodels.Interview, err error)
	UpdateStatus(id string, status string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// CreateWithOutcome persists the interview and its pending outcome in one
// transaction: both rows or neither.
func (i impl) CreateWithOutcome(interview dbmodels.Interview, outcome dbmodels.StageOutcome) (interviewID string, err error) {
	err = i.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Applicant", "Interviewer", "Outcome").Create(&interview).Error; err != nil {
			return err
		}
		outcome.InterviewID = interview.ID
		if err := tx.Omit("Interview", "Stage").Create(&outcome).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return interview.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Interview, error) {
	rec := dbmodels.Interview{}
	err := i.db.
		Model(&dbmodels.Interview{}).
		Where("id = ?", id).
		Preload("Applicant").
		Preload("Applicant.Job").
		Preload("Interviewer").
		Preload("Outcome").
		Preload("Outcome.Stage").
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

func (i impl) ListByApplicant(applicantID string) (list []dbmodels.Interview, err error) {
	list = []dbmodels.Interview{}
	err = i.db.
		Model(&dbmodels.Interview{}).
		Where("applicant_id = ?", applicantID).
		Preload("Interviewer").
		Preload("Outcome").
		Preload("Outcome.Stage").
		Order("scheduled_at desc").
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

func (i impl) ListByJob(jobID string) (list []dbmodels.Interview, err error) {
	list = []dbmodels.Interview{}
	err = i.db.
		Model(&dbmodels.Interview{}).
		Joins("JOIN applicants ON applicants.id = interviews.applicant_id").
		Where("applicants.job_id = ?", jobID).
		Preload("Applicant").
		Preload("Outcome").
		Preload("Outcome.Stage").
		Order("scheduled_at desc").
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

func (i impl) UpdateStatus(id string, status string) error {
	return i.db.
		Model(&dbmodels.Interview{}).
		Where("id = ?", id).
		Update("status", status).
		Error
}
