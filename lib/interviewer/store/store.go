package interviewerstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "hiring-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Interviewer) (id string, err error)
	GetByID(id string) (*dbmodels.Interviewer, error)
	GetByEmail(email string) (*dbmodels.Interviewer, error)
	List(interviewType string) (list []dbmodels.Interviewer, err error)
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

func (i impl) Create(rec dbmodels.Interviewer) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Interviewer, error) {
	rec := dbmodels.Interviewer{}
	err := i.db.
		Model(&dbmodels.Interviewer{}).
		Where("id = ?", id).
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

func (i impl) GetByEmail(email string) (*dbmodels.Interviewer, error) {
	rec := dbmodels.Interviewer{}
	err := i.db.
		Model(&dbmodels.Interviewer{}).
		Where("email = ?", email).
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

func (i impl) List(interviewType string) (list []dbmodels.Interviewer, err error) {
	list = []dbmodels.Interviewer{}
	query := i.db.
		Model(&dbmodels.Interviewer{}).
		Order("name")
	if interviewType != "" {
		query = query.Where("interview_type = ?", interviewType)
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
		Model(&dbmodels.Interviewer{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id string) error {
	return i.db.
		Delete(&dbmodels.Interviewer{BaseModel: dbmodels.BaseModel{ID: id}}).
		Error
}
