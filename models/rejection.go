package models

import "github.com/pkg/errors"

// RejectKind classifies a client-visible rejection of a requested operation.
type RejectKind string

const (
	RejectNotFound          RejectKind = "not_found"
	RejectInvalidTransition RejectKind = "invalid_transition"
	RejectConflict          RejectKind = "conflict"
)

// Rejection is a recoverable, client-facing refusal with a specific reason.
// Everything else that comes out of a handler is an internal error.
type Rejection struct {
	Kind   RejectKind
	Reason string
}

func (r *Rejection) Error() string {
	return r.Reason
}

func NewNotFound(reason string) error {
	return &Rejection{Kind: RejectNotFound, Reason: reason}
}

func NewInvalidTransition(reason string) error {
	return &Rejection{Kind: RejectInvalidTransition, Reason: reason}
}

func NewConflict(reason string) error {
	return &Rejection{Kind: RejectConflict, Reason: reason}
}

// AsRejection unwraps err to a Rejection if it is one.
func AsRejection(err error) (*Rejection, bool) {
	rej := &Rejection{}
	if errors.As(err, &rej) {
		return rej, true
	}
	return nil, false
}
