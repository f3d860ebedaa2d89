package stagestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "hiring-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.StageDefinition) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (*dbmodels.StageDefinition, error)
	GetByName(name string) (*dbmodels.StageDefinition, error)
	GetByOrder(order int) (*dbmodels.StageDefinition, error)
	List() (list []dbmodels.StageDefinition, err error)
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

func (i impl) Create(rec dbmodels.StageDefinition) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.StageDefinition{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.StageDefinition, error) {
	rec := dbmodels.StageDefinition{}
	err := i.db.
		Model(&dbmodels.StageDefinition{}).
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

func (i impl) GetByName(name string) (*dbmodels.StageDefinition, error) {
	rec := dbmodels.StageDefinition{}
	err := i.db.
		Model(&dbmodels.StageDefinition{}).
		Where("name = ?", name).
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

func (i impl) GetByOrder(order int) (*dbmodels.StageDefinition, error) {
	rec := dbmodels.StageDefinition{}
	err := i.db.
		Model(&dbmodels.StageDefinition{}).
		Where("stage_order = ?", order).
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

func (i impl) List() (list []dbmodels.StageDefinition, err error) {
	list = []dbmodels.StageDefinition{}
	err = i.db.
		Order("stage_order").
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
		Delete(&dbmodels.StageDefinition{BaseModel: dbmodels.BaseModel{ID: id}}).
		Error
}
