package outcomestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	interviewapimodels "hiring-backend/models/api/interview"
	dbmodels "hiring-backend/models/db"
)

type Provider interface {
	GetByInterviewAndStage(interviewID, stageID string) (*dbmodels.StageOutcome, error)
	ListByApplicant(applicantID string) (list []dbmodels.StageOutcome, err error)
	ListByInterview(interviewID string) (list []dbmodels.StageOutcome, err error)
	Update(id string, updMap map[string]interface{}) error
	Stats() (list []interviewapimodels.StageStatsView, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetByInterviewAndStage(interviewID, stageID string) (*dbmodels.StageOutcome, error) {
	rec := dbmodels.StageOutcome{}
	err := i.db.
		Model(&dbmodels.StageOutcome{}).
		Where("interview_id = ?", interviewID).
		Where("stage_id = ?", stageID).
		Preload("Interview").
		Preload("Interview.Applicant").
		Preload("Stage").
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

func (i impl) ListByApplicant(applicantID string) (list []dbmodels.StageOutcome, err error) {
	list = []dbmodels.StageOutcome{}
	err = i.db.
		Model(&dbmodels.StageOutcome{}).
		Joins("JOIN interviews ON interviews.id = stage_outcomes.interview_id").
		Where("interviews.applicant_id = ?", applicantID).
		Preload("Stage").
		Order("stage_outcomes.created_at").
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

func (i impl) ListByInterview(interviewID string) (list []dbmodels.StageOutcome, err error) {
	list = []dbmodels.StageOutcome{}
	err = i.db.
		Model(&dbmodels.StageOutcome{}).
		Where("interview_id = ?", interviewID).
		Preload("Stage").
		Order("created_at").
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
		Model(&dbmodels.StageOutcome{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Stats() (list []interviewapimodels.StageStatsView, err error) {
	list = []interviewapimodels.StageStatsView{}
	err = i.db.
		Table("stage_outcomes").
		Select("stage_outcomes.stage_id as stage_id, stage_definitions.name as stage_name, " +
			"count(stage_outcomes.id) as total, " +
			"sum(case when result = 'pass' then 1 else 0 end) as passed, " +
			"sum(case when result = 'fail' then 1 else 0 end) as failed, " +
			"sum(case when result = 'pending' then 1 else 0 end) as pending").
		Joins("JOIN stage_definitions ON stage_definitions.id = stage_outcomes.stage_id").
		Group("stage_outcomes.stage_id, stage_definitions.name").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
