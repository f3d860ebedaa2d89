package models

// ApplicantStatus is the closed set of pipeline states. Status changes go
// through the progression engine only.
type ApplicantStatus string

const (
	ApplicantStatusApplied       ApplicantStatus = "applied"
	ApplicantStatusInterviewing  ApplicantStatus = "interviewing"
	ApplicantStatusRejected      ApplicantStatus = "rejected"
	ApplicantStatusOffered       ApplicantStatus = "offered"
	ApplicantStatusOfferAccepted ApplicantStatus = "offer_accepted"
	ApplicantStatusOfferRejected ApplicantStatus = "offer_rejected"
)

// IsTerminal reports whether no further stage may be scheduled from the status.
func (s ApplicantStatus) IsTerminal() bool {
	switch s {
	case ApplicantStatusRejected, ApplicantStatusOfferAccepted, ApplicantStatusOfferRejected:
		return true
	}
	return false
}

type OfferStatus string

const (
	OfferStatusPending  OfferStatus = "pending"
	OfferStatusAccepted OfferStatus = "accepted"
	OfferStatusRejected OfferStatus = "rejected"
)

type AIResult string

const (
	AIResultNone        AIResult = ""
	AIResultShortlisted AIResult = "shortlisted"
	AIResultRejected    AIResult = "rejected"
)

type InterviewStatus string

const (
	InterviewStatusPending   InterviewStatus = "pending"
	InterviewStatusScheduled InterviewStatus = "scheduled"
	InterviewStatusCompleted InterviewStatus = "completed"
	InterviewStatusCancelled InterviewStatus = "cancelled"
)

type StageResult string

const (
	StageResultPending StageResult = "pending"
	StageResultPass    StageResult = "pass"
	StageResultFail    StageResult = "fail"
)

func (r StageResult) IsTerminal() bool {
	return r == StageResultPass || r == StageResultFail
}

// InterviewerType is the capability tag matched against a stage requirement
// at scheduling time.
type InterviewerType string

const (
	InterviewerTypeHR        InterviewerType = "HR"
	InterviewerTypeTechnical InterviewerType = "Technical"
	InterviewerTypeCultural  InterviewerType = "Cultural"
	InterviewerTypeFinal     InterviewerType = "Final"
)

var InterviewerTypes = []InterviewerType{
	InterviewerTypeHR,
	InterviewerTypeTechnical,
	InterviewerTypeCultural,
	InterviewerTypeFinal,
}

func (t InterviewerType) Valid() bool {
	for _, v := range InterviewerTypes {
		if t == v {
			return true
		}
	}
	return false
}
