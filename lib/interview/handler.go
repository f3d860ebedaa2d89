package interviewhandler

import (
	"context"
	"fmt"
	"time"

	"hiring-backend/config"
	"hiring-backend/db"
	applicantstore "hiring-backend/lib/applicant/store"
	outcomestore "hiring-backend/lib/interview/outcome-store"
	"hiring-backend/lib/interview/progression"
	interviewstore "hiring-backend/lib/interview/store"
	interviewerstore "hiring-backend/lib/interviewer/store"
	"hiring-backend/lib/notify"
	stagehandler "hiring-backend/lib/stage"
	"hiring-backend/lib/utils/lock"
	"hiring-backend/models"
	applicantapimodels "hiring-backend/models/api/applicant"
	interviewapimodels "hiring-backend/models/api/interview"
	dbmodels "hiring-backend/models/db"
)

type Provider interface {
	ProposeNextStage(applicantID string) (interviewapimodels.ProposalView, error)
	Schedule(ctx context.Context, req interviewapimodels.ScheduleRequest) (interviewapimodels.View, error)
	SubmitOutcome(ctx context.Context, interviewID string, req interviewapimodels.OutcomeRequest) (interviewapimodels.View, error)
	SubmitOfferDecision(ctx context.Context, applicantID string, decision models.OfferStatus) (applicantapimodels.View, error)
	GetByID(id string) (interviewapimodels.View, error)
	ListByApplicant(applicantID string) ([]interviewapimodels.View, error)
	ListByJob(jobID string) ([]interviewapimodels.View, error)
	OutcomeHistory(applicantID string) ([]interviewapimodels.OutcomeView, error)
	StageStats() ([]interviewapimodels.StageStatsView, error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		interviews:   interviewstore.NewInstance(db.DB),
		outcomes:     outcomestore.NewInstance(db.DB),
		applicants:   applicantstore.NewInstance(db.DB),
		interviewers: interviewerstore.NewInstance(db.DB),
		stages:       stagehandler.Instance,
		notifier:     notify.Instance,
		lockWait:     time.Duration(config.Conf.Progression.LockWaitMS) * time.Millisecond,
	}
}

// All pipeline mutations of one applicant run under a per-applicant lock, so
// concurrent requests cannot both pass the progression checks.
type impl struct {
	interviews   interviewstore.Provider
	outcomes     outcomestore.Provider
	applicants   applicantstore.Provider
	interviewers interviewerstore.Provider
	stages       stagehandler.Provider
	notifier     notify.Provider
	lockWait     time.Duration
}

func applicantLockKey(applicantID string) string {
	return fmt.Sprintf("applicant:%v", applicantID)
}

func (i *impl) ProposeNextStage(applicantID string) (view interviewapimodels.ProposalView, err error) {
	applicant, err := i.applicants.GetByID(applicantID)
	if err != nil {
		return view, err
	}
	if applicant == nil {
		return view, models.NewNotFound("applicant not found")
	}
	catalog, err := i.stages.Catalog()
	if err != nil {
		return view, err
	}
	history, err := i.history(applicantID)
	if err != nil {
		return view, err
	}
	next, completed, err := progression.NextStage(catalog, history)
	if err != nil {
		return view, err
	}
	view.Completed = completed
	if next != nil {
		view.NextStage = &interviewapimodels.StageView{
			ID:           next.ID,
			Name:         next.Name,
			StageOrder:   next.Order,
			RequiredType: next.RequiredType,
		}
	}
	return view, nil
}

func (i *impl) Schedule(ctx context.Context, req interviewapimodels.ScheduleRequest) (view interviewapimodels.View, err error) {
	locked, err := lock.WithDelay(ctx, applicantLockKey(req.ApplicantID), i.lockWait, func() error {
		view, err = i.scheduleLocked(req)
		return err
	})
	if err != nil {
		return view, err
	}
	if !locked {
		return view, models.NewConflict("applicant pipeline is busy, please retry")
	}
	return view, nil
}

func (i *impl) scheduleLocked(req interviewapimodels.ScheduleRequest) (view interviewapimodels.View, err error) {
	applicant, err := i.applicants.GetByID(req.ApplicantID)
	if err != nil {
		return view, err
	}
	if applicant == nil {
		return view, models.NewNotFound("applicant not found")
	}
	if applicant.Status.IsTerminal() {
		return view, models.NewInvalidTransition(
			fmt.Sprintf("applicant pipeline is closed with status %s", applicant.Status))
	}
	interviewer, err := i.interviewers.GetByID(req.InterviewerID)
	if err != nil {
		return view, err
	}
	if interviewer == nil {
		return view, models.NewNotFound("interviewer not found")
	}
	catalog, err := i.stages.Catalog()
	if err != nil {
		return view, err
	}
	history, err := i.history(req.ApplicantID)
	if err != nil {
		return view, err
	}
	stage, err := progression.CheckSchedule(catalog, history, req.StageID, interviewer.InterviewType)
	if err != nil {
		return view, err
	}

	interviewID, err := i.interviews.CreateWithOutcome(
		dbmodels.Interview{
			ApplicantID:   req.ApplicantID,
			InterviewerID: req.InterviewerID,
			ScheduledAt:   req.ScheduledAt,
			Status:        models.InterviewStatusScheduled,
		},
		dbmodels.StageOutcome{
			StageID: stage.ID,
			Result:  models.StageResultPending,
		})
	if err != nil {
		return view, err
	}
	if applicant.Status == models.ApplicantStatusApplied {
		err = i.applicants.Update(applicant.ID, map[string]interface{}{
			"status": models.ApplicantStatusInterviewing,
		})
		if err != nil {
			return view, err
		}
	}
	if i.notifier != nil {
		i.notifier.InterviewScheduled(*applicant, stage.Name, req.ScheduledAt)
	}
	return i.GetByID(interviewID)
}

func (i *impl) SubmitOutcome(ctx context.Context, interviewID string, req interviewapimodels.OutcomeRequest) (view interviewapimodels.View, err error) {
	interview, err := i.interviews.GetByID(interviewID)
	if err != nil {
		return view, err
	}
	if interview == nil {
		return view, models.NewNotFound("interview not found")
	}
	locked, err := lock.WithDelay(ctx, applicantLockKey(interview.ApplicantID), i.lockWait, func() error {
		view, err = i.submitOutcomeLocked(interviewID, req)
		return err
	})
	if err != nil {
		return view, err
	}
	if !locked {
		return view, models.NewConflict("applicant pipeline is busy, please retry")
	}
	return view, nil
}

func (i *impl) submitOutcomeLocked(interviewID string, req interviewapimodels.OutcomeRequest) (view interviewapimodels.View, err error) {
	// re-read under the lock, a parallel submit may have finished the stage
	interview, err := i.interviews.GetByID(interviewID)
	if err != nil {
		return view, err
	}
	if interview == nil {
		return view, models.NewNotFound("interview not found")
	}
	outcome := interview.Outcome
	if outcome == nil {
		return view, models.NewNotFound("interview has no stage record")
	}
	if outcome.Result.IsTerminal() {
		return view, models.NewInvalidTransition("stage is already completed")
	}

	updMap := map[string]interface{}{
		"result":   req.Result,
		"feedback": req.Feedback,
		"notes":    req.Notes,
	}
	if req.CurrentSalary != 0 {
		updMap["current_salary"] = req.CurrentSalary
	}
	if req.ExpectedSalary != 0 {
		updMap["expected_salary"] = req.ExpectedSalary
	}
	if req.NoticePeriodDays != 0 {
		updMap["notice_period_days"] = req.NoticePeriodDays
	}
	if req.WillingToRelocate {
		updMap["willing_to_relocate"] = true
	}
	if req.WillingToTravel {
		updMap["willing_to_travel"] = true
	}
	if req.Result.IsTerminal() {
		now := time.Now()
		updMap["completed_at"] = &now
	}
	if err = i.outcomes.Update(outcome.ID, updMap); err != nil {
		return view, err
	}
	if req.Result.IsTerminal() {
		if err = i.interviews.UpdateStatus(interviewID, string(models.InterviewStatusCompleted)); err != nil {
			return view, err
		}
		catalog, err := i.stages.Catalog()
		if err != nil {
			return view, err
		}
		stage, ok := catalog.StageByID(outcome.StageID)
		if !ok {
			return view, models.NewNotFound("stage not found")
		}
		status, changed := progression.ApplyOutcome(catalog, stage.Order, req.Result)
		if changed {
			err = i.applicants.Update(interview.ApplicantID, map[string]interface{}{
				"status": status,
			})
			if err != nil {
				return view, err
			}
		}
		if i.notifier != nil && interview.Applicant != nil {
			i.notifier.StageCompleted(*interview.Applicant, stage.Name, req.Result, status)
		}
	}
	return i.GetByID(interviewID)
}

func (i *impl) SubmitOfferDecision(ctx context.Context, applicantID string, decision models.OfferStatus) (view applicantapimodels.View, err error) {
	locked, err := lock.WithDelay(ctx, applicantLockKey(applicantID), i.lockWait, func() error {
		view, err = i.offerDecisionLocked(applicantID, decision)
		return err
	})
	if err != nil {
		return view, err
	}
	if !locked {
		return view, models.NewConflict("applicant pipeline is busy, please retry")
	}
	return view, nil
}

func (i *impl) offerDecisionLocked(applicantID string, decision models.OfferStatus) (view applicantapimodels.View, err error) {
	applicant, err := i.applicants.GetByID(applicantID)
	if err != nil {
		return view, err
	}
	if applicant == nil {
		return view, models.NewNotFound("applicant not found")
	}
	if applicant.Status != models.ApplicantStatusOffered {
		return view, models.NewInvalidTransition("applicant has no outstanding offer")
	}
	status := models.ApplicantStatusOfferAccepted
	if decision == models.OfferStatusRejected {
		status = models.ApplicantStatusOfferRejected
	}
	err = i.applicants.Update(applicantID, map[string]interface{}{
		"status":       status,
		"offer_status": decision,
	})
	if err != nil {
		return view, err
	}
	if i.notifier != nil {
		i.notifier.OfferDecision(*applicant, decision)
	}
	updated, err := i.applicants.GetByID(applicantID)
	if err != nil {
		return view, err
	}
	if updated == nil {
		return view, models.NewNotFound("applicant not found")
	}
	return applicantapimodels.ToView(*updated), nil
}

func (i *impl) GetByID(id string) (view interviewapimodels.View, err error) {
	rec, err := i.interviews.GetByID(id)
	if err != nil {
		return view, err
	}
	if rec == nil {
		return view, models.NewNotFound("interview not found")
	}
	return interviewapimodels.ToView(*rec), nil
}

func (i *impl) ListByApplicant(applicantID string) ([]interviewapimodels.View, error) {
	applicant, err := i.applicants.GetByID(applicantID)
	if err != nil {
		return nil, err
	}
	if applicant == nil {
		return nil, models.NewNotFound("applicant not found")
	}
	list, err := i.interviews.ListByApplicant(applicantID)
	if err != nil {
		return nil, err
	}
	return toViews(list), nil
}

func (i *impl) ListByJob(jobID string) ([]interviewapimodels.View, error) {
	list, err := i.interviews.ListByJob(jobID)
	if err != nil {
		return nil, err
	}
	return toViews(list), nil
}

func (i *impl) OutcomeHistory(applicantID string) ([]interviewapimodels.OutcomeView, error) {
	applicant, err := i.applicants.GetByID(applicantID)
	if err != nil {
		return nil, err
	}
	if applicant == nil {
		return nil, models.NewNotFound("applicant not found")
	}
	list, err := i.outcomes.ListByApplicant(applicantID)
	if err != nil {
		return nil, err
	}
	views := make([]interviewapimodels.OutcomeView, 0, len(list))
	for _, rec := range list {
		views = append(views, interviewapimodels.ToOutcomeView(rec))
	}
	return views, nil
}

func (i *impl) StageStats() ([]interviewapimodels.StageStatsView, error) {
	return i.outcomes.Stats()
}

func (i *impl) history(applicantID string) ([]progression.Outcome, error) {
	list, err := i.outcomes.ListByApplicant(applicantID)
	if err != nil {
		return nil, err
	}
	history := make([]progression.Outcome, 0, len(list))
	for _, rec := range list {
		history = append(history, progression.Outcome{
			StageID:   rec.StageID,
			Result:    rec.Result,
			CreatedAt: rec.CreatedAt,
		})
	}
	return history, nil
}

func toViews(list []dbmodels.Interview) []interviewapimodels.View {
	views := make([]interviewapimodels.View, 0, len(list))
	for _, rec := range list {
		views = append(views, interviewapimodels.ToView(rec))
	}
	return views
}
