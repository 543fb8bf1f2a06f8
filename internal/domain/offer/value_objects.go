package offer

import (
	"errors"
	"time"
)

var (
	ErrInvalidStatus = errors.New("invalid offer status")
	ErrInvalidWindow = errors.New("validity window end must be after start")
	ErrFinished      = errors.New("offer is finished")
)

// Status is shared by every offer type (stamp cards, referral programs,
// gifts, surveys). Transitions are owner-controlled; finished is terminal.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusFinished Status = "finished"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusFinished:
		return true
	default:
		return false
	}
}

func NewStatus(value string) (Status, error) {
	s := Status(value)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

func (s Status) CanTransitionTo(next Status) bool {
	if !next.IsValid() {
		return false
	}
	if s == StatusFinished {
		return next == StatusFinished
	}
	return true
}

type Window struct {
	from  time.Time
	until time.Time
}

func NewWindow(from, until time.Time) (Window, error) {
	if !until.After(from) {
		return Window{}, ErrInvalidWindow
	}
	return Window{from: from, until: until}, nil
}

// ReconstructWindow restores a window from storage without validation.
func ReconstructWindow(from, until time.Time) Window {
	return Window{from: from, until: until}
}

func (w Window) From() time.Time  { return w.from }
func (w Window) Until() time.Time { return w.until }

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.from) && !t.After(w.until)
}
