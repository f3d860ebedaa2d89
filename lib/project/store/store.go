package projectstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "hiring-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Project) (id string, err error)
	GetByID(id string) (*dbmodels.Project, error)
	List(status string) (list []dbmodels.Project, err error)
	Update(id string, updMap map[string]interface{}) error
	ReplaceAssignees(id string, assignees []dbmodels.Employee) error
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

func (i impl) Create(rec dbmodels.Project) (id string, err error) {
	err = i.db.
		Omit("Assignees.*").
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Project, error) {
	rec := dbmodels.Project{}
	err := i.db.
		Model(&dbmodels.Project{}).
		Where("id = ?", id).
		Preload("Assignees").
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

func (i impl) List(status string) (list []dbmodels.Project, err error) {
	list = []dbmodels.Project{}
	query := i.db.
		Model(&dbmodels.Project{}).
		Preload("Assignees").
		Order("created_at desc")
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
		Model(&dbmodels.Project{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) ReplaceAssignees(id string, assignees []dbmodels.Employee) error {
	rec := dbmodels.Project{BaseModel: dbmodels.BaseModel{ID: id}}
	return i.db.
		Model(&rec).
		Association("Assignees").
		Replace(assignees)
}

func (i impl) Delete(id string) error {
	return i.db.
		Delete(&dbmodels.Project{BaseModel: dbmodels.BaseModel{ID: id}}).
		Error
}
