package wsmodels

// ServerMessage is a progression event pushed to a connected user.
type ServerMessage struct {
	ToUserID string `json:"-"`
	Time     string `json:"time"`
	Code     string `json:"code"`
	Msg      string `json:"msg"`
}

const (
	CodeInterviewScheduled = "interview_scheduled"
	CodeStageCompleted     = "stage_completed"
	CodeOfferDecision      = "offer_decision"
)
