// Package progression holds the pure decision rules of the interview
// pipeline. It works on plain snapshots of the stage catalog and an
// applicant's outcome history; persistence and locking stay in the
// calling handler.
package progression

import (
	"fmt"
	"sort"
	"time"

	"hiring-backend/models"
)

// Stage is a catalog entry snapshot.
type Stage struct {
	ID           string
	Name         string
	Order        int
	RequiredType models.InterviewerType
}

// Outcome is one historical stage attempt of an applicant.
type Outcome struct {
	StageID   string
	Result    models.StageResult
	CreatedAt time.Time
}

// Catalog is the stage list sorted by ascending order.
type Catalog []Stage

func NewCatalog(stages []Stage) Catalog {
	c := make(Catalog, len(stages))
	copy(c, stages)
	sort.Slice(c, func(i, j int) bool { return c[i].Order < c[j].Order })
	return c
}

func (c Catalog) StageByID(id string) (Stage, bool) {
	for _, s := range c {
		if s.ID == id {
			return s, true
		}
	}
	return Stage{}, false
}

// Entry is the lowest-order stage.
func (c Catalog) Entry() (Stage, bool) {
	if len(c) == 0 {
		return Stage{}, false
	}
	return c[0], true
}

// NextAfter returns the stage with the smallest order strictly greater than
// the given one. Orders may have gaps.
func (c Catalog) NextAfter(order int) (Stage, bool) {
	for _, s := range c {
		if s.Order > order {
			return s, true
		}
	}
	return Stage{}, false
}

// PrevBefore returns the stage with the greatest order strictly less than
// the given one.
func (c Catalog) PrevBefore(order int) (Stage, bool) {
	for i := len(c) - 1; i >= 0; i-- {
		if c[i].Order < order {
			return c[i], true
		}
	}
	return Stage{}, false
}

// Latest picks the most recent outcome by creation time, ties broken by the
// catalog order of the outcome's stage. Outcomes of stages removed from the
// catalog are ignored.
func Latest(c Catalog, history []Outcome) (Outcome, Stage, bool) {
	var (
		found   bool
		best    Outcome
		bestStg Stage
	)
	for _, o := range history {
		stg, ok := c.StageByID(o.StageID)
		if !ok {
			continue
		}
		if !found || o.CreatedAt.After(best.CreatedAt) ||
			(o.CreatedAt.Equal(best.CreatedAt) && stg.Order > bestStg.Order) {
			best = o
			bestStg = stg
			found = true
		}
	}
	return best, bestStg, found
}

// NextStage decides which stage an applicant may be scheduled for next.
// completed=true signals the pipeline is finished (no further stage).
func NextStage(c Catalog, history []Outcome) (next *Stage, completed bool, err error) {
	latest, latestStage, ok := Latest(c, history)
	if !ok {
		entry, ok := c.Entry()
		if !ok {
			return nil, false, models.NewNotFound("stage catalog is empty")
		}
		return &entry, false, nil
	}
	switch latest.Result {
	case models.StageResultPass:
		after, ok := c.NextAfter(latestStage.Order)
		if !ok {
			return nil, true, nil
		}
		return &after, false, nil
	case models.StageResultPending:
		return nil, false, models.NewInvalidTransition("cannot advance: current stage is still pending")
	default:
		return nil, false, models.NewInvalidTransition("cannot advance: previous stage was not passed")
	}
}

// CheckSchedule validates a proposed (stage, interviewer capability) booking
// against the applicant's history. Checks run in the order the API promises:
// stage exists, capability matches, no duplicate attempt, previous stage
// passed.
func CheckSchedule(c Catalog, history []Outcome, stageID string, interviewerType models.InterviewerType) (Stage, error) {
	stage, ok := c.StageByID(stageID)
	if !ok {
		return Stage{}, models.NewNotFound("stage not found")
	}
	if interviewerType != stage.RequiredType {
		return Stage{}, models.NewInvalidTransition(
			fmt.Sprintf("this stage requires a %s interviewer, but got %s", stage.RequiredType, interviewerType))
	}
	for _, o := range history {
		if o.StageID == stage.ID && o.Result != models.StageResultFail {
			return Stage{}, models.NewInvalidTransition(
				fmt.Sprintf("%s was already conducted for this applicant", stage.Name))
		}
	}
	prev, hasPrev := c.PrevBefore(stage.Order)
	if hasPrev {
		if !passed(history, prev.ID) {
			return Stage{}, models.NewInvalidTransition(
				fmt.Sprintf("previous stage %s was not passed", prev.Name))
		}
	}
	return stage, nil
}

// ApplyOutcome derives the applicant status that results from finishing the
// stage at stageOrder with result. changed=false for pending results.
func ApplyOutcome(c Catalog, stageOrder int, result models.StageResult) (status models.ApplicantStatus, changed bool) {
	switch result {
	case models.StageResultFail:
		return models.ApplicantStatusRejected, true
	case models.StageResultPass:
		if _, ok := c.NextAfter(stageOrder); !ok {
			return models.ApplicantStatusOffered, true
		}
		return models.ApplicantStatusInterviewing, true
	}
	return "", false
}

func passed(history []Outcome, stageID string) bool {
	// the latest attempt of the stage decides
	var (
		found bool
		best  Outcome
	)
	for _, o := range history {
		if o.StageID != stageID {
			continue
		}
		if !found || o.CreatedAt.After(best.CreatedAt) {
			best = o
			found = true
		}
	}
	return found && best.Result == models.StageResultPass
}
