package engine

import (
	"context"
	"errors"
	"fmt"
)

// Reason classifies why an action was turned down.
type Reason string

const (
	ReasonWrongTurn        Reason = "wrong_turn"
	ReasonFirstPickChosen  Reason = "first_pick_chosen"
	ReasonFirstPickPending Reason = "first_pick_pending"
	ReasonUnknownSetting   Reason = "unknown_setting"
	ReasonSettingLocked    Reason = "setting_locked"
	ReasonBanValue         Reason = "ban_value"
	ReasonInvalidValue     Reason = "invalid_value"
	ReasonNotSkippable     Reason = "not_skippable"
	ReasonNotYesNo         Reason = "not_yes_no"
	ReasonYesNoPending     Reason = "yes_no_pending"
	ReasonCompleted        Reason = "completed"
)

var (
	ErrWrongTurn        = errors.New("invalid turn")
	ErrFirstPickChosen  = errors.New("first pick already chosen")
	ErrFirstPickPending = errors.New("first pick not chosen yet")
	ErrUnknownSetting   = errors.New("unknown setting")
	ErrSettingLocked    = errors.New("setting already locked in")
	ErrBanValue         = errors.New("ban with a non-default value")
	ErrInvalidValue     = errors.New("invalid value for setting")
	ErrNotSkippable     = errors.New("step cannot be skipped")
	ErrNotYesNo         = errors.New("step is not a yes/no question")
	ErrYesNoPending     = errors.New("yes/no question pending")
	ErrDraftCompleted   = errors.New("draft already completed")

	// ErrInvalidAction is not a rejection: no step accepts such an action.
	ErrInvalidAction = errors.New("invalid action type")
)

var reasonErrors = map[Reason]error{
	ReasonWrongTurn:        ErrWrongTurn,
	ReasonFirstPickChosen:  ErrFirstPickChosen,
	ReasonFirstPickPending: ErrFirstPickPending,
	ReasonUnknownSetting:   ErrUnknownSetting,
	ReasonSettingLocked:    ErrSettingLocked,
	ReasonBanValue:         ErrBanValue,
	ReasonInvalidValue:     ErrInvalidValue,
	ReasonNotSkippable:     ErrNotSkippable,
	ReasonNotYesNo:         ErrNotYesNo,
	ReasonYesNoPending:     ErrYesNoPending,
	ReasonCompleted:        ErrDraftCompleted,
}

// RejectionError is an illegal transition. The draft it was raised for is
// unchanged and the caller may retry with another action.
type RejectionError struct {
	Reason  Reason
	Message string
}

func (e *RejectionError) Error() string {
	if e.Message == "" {
		return string(e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Message)
}

func (e *RejectionError) Unwrap() error {
	return reasonErrors[e.Reason]
}

// IsRejection reports whether err is an illegal transition rather than a
// presenter failure.
func IsRejection(err error) bool {
	var rej *RejectionError
	return errors.As(err, &rej)
}

func reject(ctx context.Context, p Presenter, r Rejection) (string, error) {
	msg, err := p.Rejection(ctx, r)
	if err != nil {
		return "", fmt.Errorf("render %s rejection: %w", r.Reason, err)
	}
	return "", &RejectionError{Reason: r.Reason, Message: msg}
}
