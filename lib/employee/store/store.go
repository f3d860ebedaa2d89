package employeestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "hiring-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Employee) (id string, err error)
	GetByID(id string) (*dbmodels.Employee, error)
	GetByEmail(email string) (*dbmodels.Employee, error)
	List(department string) (list []dbmodels.Employee, err error)
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

func (i impl) Create(rec dbmodels.Employee) (id string, err error) {
	err = i.db.
		Omit("Projects").
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Employee, error) {
	rec := dbmodels.Employee{}
	err := i.db.
		Model(&dbmodels.Employee{}).
		Where("id = ?", id).
		Preload("Projects").
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

func (i impl) GetByEmail(email string) (*dbmodels.Employee, error) {
	rec := dbmodels.Employee{}
	err := i.db.
		Model(&dbmodels.Employee{}).
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

func (i impl) List(department string) (list []dbmodels.Employee, err error) {
	list = []dbmodels.Employee{}
	query := i.db.
		Model(&dbmodels.Employee{}).
		Preload("Projects").
		Order("name")
	if department != "" {
		query = query.Where("department = ?", department)
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
		Model(&dbmodels.Employee{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id string) error {
	return i.db.
		Delete(&dbmodels.Employee{BaseModel: dbmodels.BaseModel{ID: id}}).
		Error
}
