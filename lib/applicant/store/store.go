package applicantstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "hiring-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Applicant) (id string, err error)
	GetByID(id string) (*dbmodels.Applicant, error)
	GetByEmailAndJob(email, jobID string) (*dbmodels.Applicant, error)
	List(jobID, status string) (list []dbmodels.Applicant, err error)
	Update(id string, updMap map[string]interface{}) error
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

func (i impl) Create(rec dbmodels.Applicant) (id string, err error) {
	err = i.db.
		Omit("Job").
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Applicant, error) {
	rec := dbmodels.Applicant{}
	err := i.db.
		Model(&dbmodels.Applicant{}).
		Where("id = ?", id).
		Preload("Job").
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

func (i impl) GetByEmailAndJob(email, jobID string) (*dbmodels.Applicant, error) {
	rec := dbmodels.Applicant{}
	err := i.db.
		Model(&dbmodels.Applicant{}).
		Where("email = ?", email).
		Where("job_id = ?", jobID).
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

func (i impl) List(jobID, status string) (list []dbmodels.Applicant, err error) {
	list = []dbmodels.Applicant{}
	query := i.db.
		Model(&dbmodels.Applicant{}).
		Preload("Job").
		Order("created_at desc")
	if jobID != "" {
		query = query.Where("job_id = ?", jobID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err = query.
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.Applicant{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id string) error {
	return i.db.
		Delete(&dbmodels.Applicant{BaseModel: dbmodels.BaseModel{ID: id}}).
		Error
}
