package interviewhandler

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hiring-backend/lib/interview/progression"
	"hiring-backend/models"
	interviewapimodels "hiring-backend/models/api/interview"
	stageapimodels "hiring-backend/models/api/stage"
	dbmodels "hiring-backend/models/db"
)

// ---- in-memory fakes ----

type state struct {
	mu           sync.Mutex
	applicants   map[string]dbmodels.Applicant
	interviewers map[string]dbmodels.Interviewer
	interviews   map[string]dbmodels.Interview
	outcomes     map[string]dbmodels.StageOutcome
	seq          int
	createDelay  time.Duration
}

func newState() *state {
	return &state{
		applicants:   map[string]dbmodels.Applicant{},
		interviewers: map[string]dbmodels.Interviewer{},
		interviews:   map[string]dbmodels.Interview{},
		outcomes:     map[string]dbmodels.StageOutcome{},
	}
}

func (s *state) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s-%d", prefix, s.seq)
}

type fakeInterviews struct{ s *state }

func (f fakeInterviews) CreateWithOutcome(interview dbmodels.Interview, outcome dbmodels.StageOutcome) (string, error) {
	if f.s.createDelay > 0 {
		time.Sleep(f.s.createDelay)
	}
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	interview.ID = f.s.nextID("iv")
	interview.CreatedAt = time.Now().Add(time.Duration(f.s.seq) * time.Millisecond)
	outcome.ID = f.s.nextID("oc")
	outcome.InterviewID = interview.ID
	outcome.CreatedAt = interview.CreatedAt
	f.s.interviews[interview.ID] = interview
	f.s.outcomes[outcome.ID] = outcome
	return interview.ID, nil
}

func (f fakeInterviews) GetByID(id string) (*dbmodels.Interview, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	rec, ok := f.s.interviews[id]
	if !ok {
		return nil, nil
	}
	if applicant, ok := f.s.applicants[rec.ApplicantID]; ok {
		rec.Applicant = &applicant
	}
	for _, o := range f.s.outcomes {
		if o.InterviewID == id {
			outcome := o
			rec.Outcome = &outcome
			break
		}
	}
	return &rec, nil
}

func (f fakeInterviews) ListByApplicant(applicantID string) ([]dbmodels.Interview, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	list := []dbmodels.Interview{}
	for _, rec := range f.s.interviews {
		if rec.ApplicantID == applicantID {
			list = append(list, rec)
		}
	}
	return list, nil
}

func (f fakeInterviews) ListByJob(jobID string) ([]dbmodels.Interview, error) {
	return nil, nil
}

func (f fakeInterviews) UpdateStatus(id string, status string) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	rec, ok := f.s.interviews[id]
	if ok {
		rec.Status = models.InterviewStatus(status)
		f.s.interviews[id] = rec
	}
	return nil
}

type fakeOutcomes struct{ s *state }

func (f fakeOutcomes) GetByInterviewAndStage(interviewID, stageID string) (*dbmodels.StageOutcome, error) {
	return nil, nil
}

func (f fakeOutcomes) ListByApplicant(applicantID string) ([]dbmodels.StageOutcome, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	list := []dbmodels.StageOutcome{}
	for _, o := range f.s.outcomes {
		iv, ok := f.s.interviews[o.InterviewID]
		if ok && iv.ApplicantID == applicantID {
			list = append(list, o)
		}
	}
	return list, nil
}

func (f fakeOutcomes) ListByInterview(interviewID string) ([]dbmodels.StageOutcome, error) {
	return nil, nil
}

func (f fakeOutcomes) Update(id string, updMap map[string]interface{}) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	rec, ok := f.s.outcomes[id]
	if !ok {
		return nil
	}
	if v, ok := updMap["result"]; ok {
		rec.Result = v.(models.StageResult)
	}
	if v, ok := updMap["feedback"]; ok {
		rec.Feedback = v.(string)
	}
	if v, ok := updMap["notes"]; ok {
		rec.Notes = v.(string)
	}
	if v, ok := updMap["completed_at"]; ok {
		rec.CompletedAt = v.(*time.Time)
	}
	f.s.outcomes[id] = rec
	return nil
}

func (f fakeOutcomes) Stats() ([]interviewapimodels.StageStatsView, error) {
	return nil, nil
}

type fakeApplicants struct{ s *state }

func (f fakeApplicants) Create(rec dbmodels.Applicant) (string, error) { return "", nil }

func (f fakeApplicants) GetByID(id string) (*dbmodels.Applicant, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	rec, ok := f.s.applicants[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f fakeApplicants) GetByEmailAndJob(email, jobID string) (*dbmodels.Applicant, error) {
	return nil, nil
}

func (f fakeApplicants) List(jobID, status string) ([]dbmodels.Applicant, error) {
	return nil, nil
}

func (f fakeApplicants) Update(id string, updMap map[string]interface{}) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	rec, ok := f.s.applicants[id]
	if !ok {
		return nil
	}
	if v, ok := updMap["status"]; ok {
		rec.Status = v.(models.ApplicantStatus)
	}
	if v, ok := updMap["offer_status"]; ok {
		rec.OfferStatus = v.(models.OfferStatus)
	}
	f.s.applicants[id] = rec
	return nil
}

func (f fakeApplicants) Delete(id string) error { return nil }

type fakeInterviewers struct{ s *state }

func (f fakeInterviewers) Create(rec dbmodels.Interviewer) (string, error) { return "", nil }

func (f fakeInterviewers) GetByID(id string) (*dbmodels.Interviewer, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	rec, ok := f.s.interviewers[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f fakeInterviewers) GetByEmail(email string) (*dbmodels.Interviewer, error) {
	return nil, nil
}

func (f fakeInterviewers) List(interviewType string) ([]dbmodels.Interviewer, error) {
	return nil, nil
}

func (f fakeInterviewers) Update(id string, updMap map[string]interface{}) error { return nil }
func (f fakeInterviewers) Delete(id string) error                                { return nil }

type fakeStages struct {
	catalog progression.Catalog
}

func (f fakeStages) List() ([]dbmodels.StageDefinition, error)             { return nil, nil }
func (f fakeStages) GetByID(id string) (*dbmodels.StageDefinition, error)  { return nil, nil }
func (f fakeStages) Create(req stageapimodels.SaveRequest) (string, error) { return "", nil }
func (f fakeStages) Update(id string, req stageapimodels.SaveRequest) error { return nil }
func (f fakeStages) Delete(id string) error                                { return nil }
func (f fakeStages) Catalog() (progression.Catalog, error)                 { return f.catalog, nil }

type fakeNotifier struct {
	mu        sync.Mutex
	scheduled []string
	completed []string
	decisions []models.OfferStatus
}

func (f *fakeNotifier) InterviewScheduled(applicant dbmodels.Applicant, stageName string, at time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scheduled = append(f.scheduled, stageName)
}

func (f *fakeNotifier) StageCompleted(applicant dbmodels.Applicant, stageName string, result models.StageResult, newStatus models.ApplicantStatus) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.completed = append(f.completed, fmt.Sprintf("%s:%s", stageName, result))
}

func (f *fakeNotifier) OfferDecision(applicant dbmodels.Applicant, decision models.OfferStatus) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.decisions = append(f.decisions, decision)
}

// ---- fixtures ----

var testCatalog = progression.NewCatalog([]progression.Stage{
	{ID: "st-hr", Name: "HR Interview", Order: 1, RequiredType: models.InterviewerTypeHR},
	{ID: "st-final", Name: "Final Round", Order: 2, RequiredType: models.InterviewerTypeFinal},
})

func newTestHandler(s *state, notifier *fakeNotifier, lockWait time.Duration) *impl {
	return &impl{
		interviews:   fakeInterviews{s},
		outcomes:     fakeOutcomes{s},
		applicants:   fakeApplicants{s},
		interviewers: fakeInterviewers{s},
		stages:       fakeStages{catalog: testCatalog},
		notifier:     notifier,
		lockWait:     lockWait,
	}
}

func seedApplicant(s *state, id string, status models.ApplicantStatus) {
	s.applicants[id] = dbmodels.Applicant{
		BaseModel: dbmodels.BaseModel{ID: id},
		Name:      "Jordan Reese",
		Email:     "jordan@example.com",
		Status:    status,
	}
}

func seedInterviewer(s *state, id string, iType models.InterviewerType) {
	s.interviewers[id] = dbmodels.Interviewer{
		BaseModel:     dbmodels.BaseModel{ID: id},
		Name:          "Sam Interviewer",
		InterviewType: iType,
	}
}

func requireRejection(t *testing.T, err error, kind models.RejectKind) {
	t.Helper()
	rej, ok := models.AsRejection(err)
	require.True(t, ok, "expected a rejection, got %v", err)
	require.Equal(t, kind, rej.Kind)
}

// ---- tests ----

func TestScheduleHappyPath(t *testing.T) {
	s := newState()
	notifier := &fakeNotifier{}
	h := newTestHandler(s, notifier, time.Second)
	seedApplicant(s, "app-1", models.ApplicantStatusApplied)
	seedInterviewer(s, "int-hr", models.InterviewerTypeHR)

	view, err := h.Schedule(context.Background(), interviewapimodels.ScheduleRequest{
		ApplicantID:   "app-1",
		InterviewerID: "int-hr",
		StageID:       "st-hr",
		ScheduledAt:   time.Now().Add(24 * time.Hour),
	})
	require.Nil(t, err)
	require.Equal(t, models.InterviewStatusScheduled, view.Status)
	require.NotNil(t, view.Outcome)
	require.Equal(t, models.StageResultPending, view.Outcome.Result)

	applicant, _ := h.applicants.GetByID("app-1")
	require.Equal(t, models.ApplicantStatusInterviewing, applicant.Status)
	require.Equal(t, []string{"HR Interview"}, notifier.scheduled)
}

func TestScheduleRejections(t *testing.T) {
	s := newState()
	h := newTestHandler(s, &fakeNotifier{}, time.Second)
	seedApplicant(s, "app-1", models.ApplicantStatusApplied)
	seedApplicant(s, "app-closed", models.ApplicantStatusRejected)
	seedInterviewer(s, "int-hr", models.InterviewerTypeHR)
	seedInterviewer(s, "int-final", models.InterviewerTypeFinal)

	t.Run(`unknown applicant`, func(t *testing.T) {
		_, err := h.Schedule(context.Background(), interviewapimodels.ScheduleRequest{
			ApplicantID: "app-none", InterviewerID: "int-hr", StageID: "st-hr", ScheduledAt: time.Now(),
		})
		requireRejection(t, err, models.RejectNotFound)
	})

	t.Run(`unknown interviewer`, func(t *testing.T) {
		_, err := h.Schedule(context.Background(), interviewapimodels.ScheduleRequest{
			ApplicantID: "app-1", InterviewerID: "int-none", StageID: "st-hr", ScheduledAt: time.Now(),
		})
		requireRejection(t, err, models.RejectNotFound)
	})

	t.Run(`terminal applicant`, func(t *testing.T) {
		_, err := h.Schedule(context.Background(), interviewapimodels.ScheduleRequest{
			ApplicantID: "app-closed", InterviewerID: "int-hr", StageID: "st-hr", ScheduledAt: time.Now(),
		})
		requireRejection(t, err, models.RejectInvalidTransition)
	})

	t.Run(`capability mismatch`, func(t *testing.T) {
		_, err := h.Schedule(context.Background(), interviewapimodels.ScheduleRequest{
			ApplicantID: "app-1", InterviewerID: "int-final", StageID: "st-hr", ScheduledAt: time.Now(),
		})
		requireRejection(t, err, models.RejectInvalidTransition)
	})

	t.Run(`later stage before the first passed`, func(t *testing.T) {
		_, err := h.Schedule(context.Background(), interviewapimodels.ScheduleRequest{
			ApplicantID: "app-1", InterviewerID: "int-final", StageID: "st-final", ScheduledAt: time.Now(),
		})
		requireRejection(t, err, models.RejectInvalidTransition)
	})

	require.Empty(t, s.interviews, "no interview may be created by a rejected request")
}

func TestConcurrentScheduleOneWins(t *testing.T) {
	s := newState()
	s.createDelay = 150 * time.Millisecond
	h := newTestHandler(s, &fakeNotifier{}, 30*time.Millisecond)
	seedApplicant(s, "app-1", models.ApplicantStatusApplied)
	seedInterviewer(s, "int-hr", models.InterviewerTypeHR)

	req := interviewapimodels.ScheduleRequest{
		ApplicantID:   "app-1",
		InterviewerID: "int-hr",
		StageID:       "st-hr",
		ScheduledAt:   time.Now().Add(24 * time.Hour),
	}

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for range [2]struct{}{} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := h.Schedule(context.Background(), req)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	conflicts, successes := 0, 0
	for err := range errs {
		if err == nil {
			successes++
			continue
		}
		rej, ok := models.AsRejection(err)
		require.True(t, ok, "unexpected error: %v", err)
		require.Equal(t, models.RejectConflict, rej.Kind)
		conflicts++
	}
	require.Equal(t, 1, successes)
	require.Equal(t, 1, conflicts)
	require.Len(t, s.interviews, 1)
}

func TestSubmitOutcomeFullPipeline(t *testing.T) {
	s := newState()
	notifier := &fakeNotifier{}
	h := newTestHandler(s, notifier, time.Second)
	seedApplicant(s, "app-1", models.ApplicantStatusApplied)
	seedInterviewer(s, "int-hr", models.InterviewerTypeHR)
	seedInterviewer(s, "int-final", models.InterviewerTypeFinal)
	ctx := context.Background()

	hrView, err := h.Schedule(ctx, interviewapimodels.ScheduleRequest{
		ApplicantID: "app-1", InterviewerID: "int-hr", StageID: "st-hr", ScheduledAt: time.Now(),
	})
	require.Nil(t, err)

	// pending result keeps the stage and applicant in place
	view, err := h.SubmitOutcome(ctx, hrView.ID, interviewapimodels.OutcomeRequest{
		Result: models.StageResultPending, Notes: "reschedule requested",
	})
	require.Nil(t, err)
	require.Equal(t, models.InterviewStatusScheduled, view.Status)

	view, err = h.SubmitOutcome(ctx, hrView.ID, interviewapimodels.OutcomeRequest{
		Result: models.StageResultPass, Feedback: "solid communication",
	})
	require.Nil(t, err)
	require.Equal(t, models.InterviewStatusCompleted, view.Status)
	require.NotNil(t, view.Outcome.CompletedAt)

	applicant, _ := h.applicants.GetByID("app-1")
	require.Equal(t, models.ApplicantStatusInterviewing, applicant.Status)

	// completed stage refuses another submission
	_, err = h.SubmitOutcome(ctx, hrView.ID, interviewapimodels.OutcomeRequest{
		Result: models.StageResultFail,
	})
	requireRejection(t, err, models.RejectInvalidTransition)

	finalView, err := h.Schedule(ctx, interviewapimodels.ScheduleRequest{
		ApplicantID: "app-1", InterviewerID: "int-final", StageID: "st-final", ScheduledAt: time.Now(),
	})
	require.Nil(t, err)

	_, err = h.SubmitOutcome(ctx, finalView.ID, interviewapimodels.OutcomeRequest{
		Result: models.StageResultPass,
	})
	require.Nil(t, err)

	applicant, _ = h.applicants.GetByID("app-1")
	require.Equal(t, models.ApplicantStatusOffered, applicant.Status)
	require.Equal(t, []string{"HR Interview:pass", "Final Round:pass"}, notifier.completed)

	// proposal after the top stage passed reports a finished pipeline
	proposal, err := h.ProposeNextStage("app-1")
	require.Nil(t, err)
	require.True(t, proposal.Completed)
	require.Nil(t, proposal.NextStage)
}

func TestSubmitOutcomeFailRejectsApplicant(t *testing.T) {
	s := newState()
	h := newTestHandler(s, &fakeNotifier{}, time.Second)
	seedApplicant(s, "app-1", models.ApplicantStatusApplied)
	seedInterviewer(s, "int-hr", models.InterviewerTypeHR)
	ctx := context.Background()

	view, err := h.Schedule(ctx, interviewapimodels.ScheduleRequest{
		ApplicantID: "app-1", InterviewerID: "int-hr", StageID: "st-hr", ScheduledAt: time.Now(),
	})
	require.Nil(t, err)

	_, err = h.SubmitOutcome(ctx, view.ID, interviewapimodels.OutcomeRequest{
		Result: models.StageResultFail, Feedback: "not a fit",
	})
	require.Nil(t, err)

	applicant, _ := h.applicants.GetByID("app-1")
	require.Equal(t, models.ApplicantStatusRejected, applicant.Status)

	// closed pipeline refuses new bookings
	_, err = h.Schedule(ctx, interviewapimodels.ScheduleRequest{
		ApplicantID: "app-1", InterviewerID: "int-hr", StageID: "st-hr", ScheduledAt: time.Now(),
	})
	requireRejection(t, err, models.RejectInvalidTransition)
}

func TestProposeNextStage(t *testing.T) {
	s := newState()
	h := newTestHandler(s, &fakeNotifier{}, time.Second)
	seedApplicant(s, "app-1", models.ApplicantStatusApplied)

	proposal, err := h.ProposeNextStage("app-1")
	require.Nil(t, err)
	require.False(t, proposal.Completed)
	require.Equal(t, "st-hr", proposal.NextStage.ID)

	_, err = h.ProposeNextStage("app-none")
	requireRejection(t, err, models.RejectNotFound)
}

func TestSubmitOfferDecision(t *testing.T) {
	s := newState()
	notifier := &fakeNotifier{}
	h := newTestHandler(s, notifier, time.Second)
	seedApplicant(s, "app-offered", models.ApplicantStatusOffered)
	seedApplicant(s, "app-early", models.ApplicantStatusInterviewing)
	ctx := context.Background()

	t.Run(`no outstanding offer`, func(t *testing.T) {
		_, err := h.SubmitOfferDecision(ctx, "app-early", models.OfferStatusAccepted)
		requireRejection(t, err, models.RejectInvalidTransition)
	})

	t.Run(`accept`, func(t *testing.T) {
		view, err := h.SubmitOfferDecision(ctx, "app-offered", models.OfferStatusAccepted)
		require.Nil(t, err)
		require.Equal(t, models.ApplicantStatusOfferAccepted, view.Status)
		require.Equal(t, models.OfferStatusAccepted, view.OfferStatus)
		require.Equal(t, []models.OfferStatus{models.OfferStatusAccepted}, notifier.decisions)
	})

	t.Run(`decision is final`, func(t *testing.T) {
		_, err := h.SubmitOfferDecision(ctx, "app-offered", models.OfferStatusRejected)
		requireRejection(t, err, models.RejectInvalidTransition)
	})
}
