package progression

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hiring-backend/models"
)

var testCatalog = NewCatalog([]Stage{
	{ID: "st-final", Name: "Final Round", Order: 3, RequiredType: models.InterviewerTypeFinal},
	{ID: "st-hr", Name: "HR Interview", Order: 1, RequiredType: models.InterviewerTypeHR},
	{ID: "st-tech", Name: "Technical Round", Order: 2, RequiredType: models.InterviewerTypeTechnical},
})

func outcomeAt(stageID string, result models.StageResult, minutesAgo int) Outcome {
	return Outcome{
		StageID:   stageID,
		Result:    result,
		CreatedAt: time.Now().Add(-time.Duration(minutesAgo) * time.Minute),
	}
}

func requireInvalidTransition(t *testing.T, err error) {
	t.Helper()
	rej, ok := models.AsRejection(err)
	require.True(t, ok, "expected a rejection, got %v", err)
	require.Equal(t, models.RejectInvalidTransition, rej.Kind)
}

func TestNextStage(t *testing.T) {
	t.Run(`no history proposes entry stage`, func(t *testing.T) {
		next, completed, err := NextStage(testCatalog, nil)
		require.Nil(t, err)
		require.False(t, completed)
		require.Equal(t, "st-hr", next.ID)
	})

	t.Run(`pass on entry proposes the next order`, func(t *testing.T) {
		history := []Outcome{outcomeAt("st-hr", models.StageResultPass, 10)}
		next, completed, err := NextStage(testCatalog, history)
		require.Nil(t, err)
		require.False(t, completed)
		require.Equal(t, "st-tech", next.ID)
	})

	t.Run(`pass on the highest order completes the pipeline`, func(t *testing.T) {
		history := []Outcome{
			outcomeAt("st-hr", models.StageResultPass, 30),
			outcomeAt("st-tech", models.StageResultPass, 20),
			outcomeAt("st-final", models.StageResultPass, 10),
		}
		next, completed, err := NextStage(testCatalog, history)
		require.Nil(t, err)
		require.True(t, completed)
		require.Nil(t, next)
	})

	t.Run(`pending latest outcome refuses to advance`, func(t *testing.T) {
		history := []Outcome{outcomeAt("st-hr", models.StageResultPending, 10)}
		_, _, err := NextStage(testCatalog, history)
		requireInvalidTransition(t, err)
	})

	t.Run(`failed latest outcome refuses to advance`, func(t *testing.T) {
		history := []Outcome{
			outcomeAt("st-hr", models.StageResultPass, 20),
			outcomeAt("st-tech", models.StageResultFail, 10),
		}
		_, _, err := NextStage(testCatalog, history)
		requireInvalidTransition(t, err)
	})

	t.Run(`empty catalog is a not-found`, func(t *testing.T) {
		_, _, err := NextStage(Catalog{}, nil)
		rej, ok := models.AsRejection(err)
		require.True(t, ok)
		require.Equal(t, models.RejectNotFound, rej.Kind)
	})

	t.Run(`latest is decided by creation time, not slice order`, func(t *testing.T) {
		// tech pass is newer although listed first
		history := []Outcome{
			outcomeAt("st-tech", models.StageResultPass, 5),
			outcomeAt("st-hr", models.StageResultPass, 60),
		}
		next, completed, err := NextStage(testCatalog, history)
		require.Nil(t, err)
		require.False(t, completed)
		require.Equal(t, "st-final", next.ID)
	})
}

func TestCheckSchedule(t *testing.T) {
	t.Run(`unknown stage`, func(t *testing.T) {
		_, err := CheckSchedule(testCatalog, nil, "st-none", models.InterviewerTypeHR)
		rej, ok := models.AsRejection(err)
		require.True(t, ok)
		require.Equal(t, models.RejectNotFound, rej.Kind)
	})

	t.Run(`capability mismatch rejected regardless of order correctness`, func(t *testing.T) {
		// entry stage, order fine, wrong interviewer type
		_, err := CheckSchedule(testCatalog, nil, "st-hr", models.InterviewerTypeTechnical)
		requireInvalidTransition(t, err)

		// out-of-order AND wrong type: capability check fires first
		_, err = CheckSchedule(testCatalog, nil, "st-final", models.InterviewerTypeHR)
		requireInvalidTransition(t, err)
	})

	t.Run(`scheduling a later stage before the previous one passed`, func(t *testing.T) {
		_, err := CheckSchedule(testCatalog, nil, "st-tech", models.InterviewerTypeTechnical)
		requireInvalidTransition(t, err)

		history := []Outcome{outcomeAt("st-hr", models.StageResultPending, 10)}
		_, err = CheckSchedule(testCatalog, history, "st-tech", models.InterviewerTypeTechnical)
		requireInvalidTransition(t, err)
	})

	t.Run(`entry stage schedules with empty history`, func(t *testing.T) {
		stage, err := CheckSchedule(testCatalog, nil, "st-hr", models.InterviewerTypeHR)
		require.Nil(t, err)
		require.Equal(t, 1, stage.Order)
	})

	t.Run(`next stage unlocks after a pass`, func(t *testing.T) {
		history := []Outcome{outcomeAt("st-hr", models.StageResultPass, 10)}
		stage, err := CheckSchedule(testCatalog, history, "st-tech", models.InterviewerTypeTechnical)
		require.Nil(t, err)
		require.Equal(t, "st-tech", stage.ID)
	})

	t.Run(`a passed stage cannot be conducted twice`, func(t *testing.T) {
		history := []Outcome{outcomeAt("st-hr", models.StageResultPass, 10)}
		_, err := CheckSchedule(testCatalog, history, "st-hr", models.InterviewerTypeHR)
		requireInvalidTransition(t, err)
	})

	t.Run(`a pending stage blocks a duplicate booking`, func(t *testing.T) {
		history := []Outcome{outcomeAt("st-hr", models.StageResultPending, 10)}
		_, err := CheckSchedule(testCatalog, history, "st-hr", models.InterviewerTypeHR)
		requireInvalidTransition(t, err)
	})

	t.Run(`a failed attempt does not block a retry of the same stage`, func(t *testing.T) {
		history := []Outcome{outcomeAt("st-hr", models.StageResultFail, 10)}
		stage, err := CheckSchedule(testCatalog, history, "st-hr", models.InterviewerTypeHR)
		require.Nil(t, err)
		require.Equal(t, "st-hr", stage.ID)
	})

	t.Run(`order gaps resolve to the immediately preceding stage`, func(t *testing.T) {
		gapped := NewCatalog([]Stage{
			{ID: "a", Name: "A", Order: 10, RequiredType: models.InterviewerTypeHR},
			{ID: "b", Name: "B", Order: 40, RequiredType: models.InterviewerTypeFinal},
		})
		history := []Outcome{outcomeAt("a", models.StageResultPass, 10)}
		stage, err := CheckSchedule(gapped, history, "b", models.InterviewerTypeFinal)
		require.Nil(t, err)
		require.Equal(t, "b", stage.ID)
	})
}

func TestApplyOutcome(t *testing.T) {
	t.Run(`fail is terminal rejection`, func(t *testing.T) {
		status, changed := ApplyOutcome(testCatalog, 2, models.StageResultFail)
		require.True(t, changed)
		require.Equal(t, models.ApplicantStatusRejected, status)
	})

	t.Run(`pass on a non-final stage keeps interviewing`, func(t *testing.T) {
		status, changed := ApplyOutcome(testCatalog, 1, models.StageResultPass)
		require.True(t, changed)
		require.Equal(t, models.ApplicantStatusInterviewing, status)
	})

	t.Run(`pass on the highest-order stage yields offered`, func(t *testing.T) {
		status, changed := ApplyOutcome(testCatalog, 3, models.StageResultPass)
		require.True(t, changed)
		require.Equal(t, models.ApplicantStatusOffered, status)
	})

	t.Run(`pending is a no-op`, func(t *testing.T) {
		_, changed := ApplyOutcome(testCatalog, 1, models.StageResultPending)
		require.False(t, changed)
	})
}

// Full walk of the pipeline: HR pass, wrong-type booking for Technical
// rejected, Technical fail closes the pipeline.
func TestPipelineScenario(t *testing.T) {
	history := []Outcome{}

	next, completed, err := NextStage(testCatalog, history)
	require.Nil(t, err)
	require.False(t, completed)
	require.Equal(t, "st-hr", next.ID)

	_, err = CheckSchedule(testCatalog, history, next.ID, models.InterviewerTypeHR)
	require.Nil(t, err)
	history = append(history, outcomeAt("st-hr", models.StageResultPass, 30))

	next, _, err = NextStage(testCatalog, history)
	require.Nil(t, err)
	require.Equal(t, "st-tech", next.ID)

	_, err = CheckSchedule(testCatalog, history, "st-tech", models.InterviewerTypeHR)
	requireInvalidTransition(t, err)

	_, err = CheckSchedule(testCatalog, history, "st-tech", models.InterviewerTypeTechnical)
	require.Nil(t, err)
	history = append(history, outcomeAt("st-tech", models.StageResultFail, 10))

	status, changed := ApplyOutcome(testCatalog, 2, models.StageResultFail)
	require.True(t, changed)
	require.Equal(t, models.ApplicantStatusRejected, status)

	_, _, err = NextStage(testCatalog, history)
	requireInvalidTransition(t, err)

	_, err = CheckSchedule(testCatalog, history, "st-final", models.InterviewerTypeFinal)
	requireInvalidTransition(t, err)
}
