package stagehandler

import (
	"sync"

	"hiring-backend/db"
	"hiring-backend/lib/interview/progression"
	stagestore "hiring-backend/lib/stage/store"
	"hiring-backend/models"
	stageapimodels "hiring-backend/models/api/stage"
	dbmodels "hiring-backend/models/db"
)

type Provider interface {
	List() ([]dbmodels.StageDefinition, error)
	GetByID(id string) (*dbmodels.StageDefinition, error)
	Create(req stageapimodels.SaveRequest) (id string, err error)
	Update(id string, req stageapimodels.SaveRequest) error
	Delete(id string) error
	Catalog() (progression.Catalog, error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store: stagestore.NewInstance(db.DB),
	}
}

// Catalog reads are frequent and the table is tiny reference data, so the
// list is cached and dropped on any mutation.
type impl struct {
	store stagestore.Provider

	mu     sync.RWMutex
	cached []dbmodels.StageDefinition
}

func (i *impl) List() ([]dbmodels.StageDefinition, error) {
	i.mu.RLock()
	if i.cached != nil {
		list := i.cached
		i.mu.RUnlock()
		return list, nil
	}
	i.mu.RUnlock()

	list, err := i.store.List()
	if err != nil {
		return nil, err
	}
	i.mu.Lock()
	i.cached = list
	i.mu.Unlock()
	return list, nil
}

func (i *impl) GetByID(id string) (*dbmodels.StageDefinition, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, models.NewNotFound("stage not found")
	}
	return rec, nil
}

func (i *impl) Create(req stageapimodels.SaveRequest) (id string, err error) {
	if err = i.checkUnique("", req); err != nil {
		return "", err
	}
	rec := dbmodels.StageDefinition{
		Name:         req.Name,
		StageOrder:   req.StageOrder,
		RequiredType: req.RequiredType,
		Description:  req.Description,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	i.dropCache()
	return id, nil
}

func (i *impl) Update(id string, req stageapimodels.SaveRequest) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.NewNotFound("stage not found")
	}
	if err = i.checkUnique(id, req); err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"name":          req.Name,
		"stage_order":   req.StageOrder,
		"required_type": req.RequiredType,
		"description":   req.Description,
	}
	if err = i.store.Update(id, updMap); err != nil {
		return err
	}
	i.dropCache()
	return nil
}

func (i *impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.NewNotFound("stage not found")
	}
	if err = i.store.Delete(id); err != nil {
		return err
	}
	i.dropCache()
	return nil
}

func (i *impl) Catalog() (progression.Catalog, error) {
	list, err := i.List()
	if err != nil {
		return nil, err
	}
	stages := make([]progression.Stage, 0, len(list))
	for _, rec := range list {
		stages = append(stages, progression.Stage{
			ID:           rec.ID,
			Name:         rec.Name,
			Order:        rec.StageOrder,
			RequiredType: rec.RequiredType,
		})
	}
	return progression.NewCatalog(stages), nil
}

func (i *impl) checkUnique(selfID string, req stageapimodels.SaveRequest) error {
	byName, err := i.store.GetByName(req.Name)
	if err != nil {
		return err
	}
	if byName != nil && byName.ID != selfID {
		return models.NewInvalidTransition("a stage with this name already exists")
	}
	byOrder, err := i.store.GetByOrder(req.StageOrder)
	if err != nil {
		return err
	}
	if byOrder != nil && byOrder.ID != selfID {
		return models.NewInvalidTransition("a stage with this order already exists")
	}
	return nil
}

func (i *impl) dropCache() {
	i.mu.Lock()
	i.cached = nil
	i.mu.Unlock()
}
