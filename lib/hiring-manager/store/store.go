package hiringmanagerstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "hiring-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.HiringManager) (id string, err error)
	GetByID(id string) (*dbmodels.HiringManager, error)
	GetByEmail(email string) (*dbmodels.HiringManager, error)
	List() (list []dbmodels.HiringManager, err error)
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

func (i impl) Create(rec dbmodels.HiringManager) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.HiringManager, error) {
	rec := dbmodels.HiringManager{}
	err := i.db.
		Model(&dbmodels.HiringManager{}).
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

func (i impl) GetByEmail(email string) (*dbmodels.HiringManager, error) {
	rec := dbmodels.HiringManager{}
	err := i.db.
		Model(&dbmodels.HiringManager{}).
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

func (i impl) List() (list []dbmodels.HiringManager, err error) {
	list = []dbmodels.HiringManager{}
	err = i.db.
		Model(&dbmodels.HiringManager{}).
		Order("name").
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
		Model(&dbmodels.HiringManager{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id string) error {
	return i.db.
		Delete(&dbmodels.HiringManager{BaseModel: dbmodels.BaseModel{ID: id}}).
		Error
}
