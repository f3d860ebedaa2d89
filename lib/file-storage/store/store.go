package filestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "hiring-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.FileRecord) (id string, err error)
	GetByID(id string) (*dbmodels.FileRecord, error)
	GetResume(applicantID string) (*dbmodels.FileRecord, error)
	ListByApplicant(applicantID string, fileType dbmodels.FileType) (list []dbmodels.FileRecord, err error)
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

func (i impl) Create(rec dbmodels.FileRecord) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.FileRecord, error) {
	rec := dbmodels.FileRecord{}
	err := i.db.
		Model(&dbmodels.FileRecord{}).
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

func (i impl) GetResume(applicantID string) (*dbmodels.FileRecord, error) {
	rec := dbmodels.FileRecord{}
	err := i.db.
		Model(&dbmodels.FileRecord{}).
		Where("applicant_id = ?", applicantID).
		Where("file_type = ?", dbmodels.FileTypeResume).
		Order("created_at desc").
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

func (i impl) ListByApplicant(applicantID string, fileType dbmodels.FileType) (list []dbmodels.FileRecord, err error) {
	list = []dbmodels.FileRecord{}
	query := i.db.
		Model(&dbmodels.FileRecord{}).
		Where("applicant_id = ?", applicantID).
		Order("created_at desc")
	if fileType != "" {
		query = query.Where("file_type = ?", fileType)
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

func (i impl) Delete(id string) error {
	return i.db.
		Delete(&dbmodels.FileRecord{BaseModel: dbmodels.BaseModel{ID: id}}).
		Error
}
