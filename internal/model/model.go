package model

import (
	"errors"
	"fmt"
	"time"
)

// ActionType is the kind of implicit interaction a user had with an event.
type ActionType string

const (
	ActionView     ActionType = "VIEW"
	ActionRegister ActionType = "REGISTER"
	ActionLike     ActionType = "LIKE"
)

// Action weights form a fixed, totally ordered scale. They are never
// remapped at runtime.
const (
	ViewWeight     = 0.4
	RegisterWeight = 0.8
	LikeWeight     = 1.0
)

var ErrInvalidID = errors.New("non-positive id")

// ParseActionType validates a wire-level action type string.
func ParseActionType(s string) (ActionType, error) {
	switch t := ActionType(s); t {
	case ActionView, ActionRegister, ActionLike:
		return t, nil
	}
	return "", fmt.Errorf("unknown action type %q", s)
}

// Weight returns the fixed weight of the action type.
func (t ActionType) Weight() float64 {
	switch t {
	case ActionView:
		return ViewWeight
	case ActionRegister:
		return RegisterWeight
	case ActionLike:
		return LikeWeight
	}
	return 0
}

func (t *ActionType) UnmarshalText(b []byte) error {
	parsed, err := ParseActionType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t ActionType) MarshalText() ([]byte, error) {
	return []byte(t), nil
}

// UserAction is a single interaction record as carried on the user-actions
// topic. Multiple records may exist for the same (user, event) pair, each
// representing an escalation attempt.
type UserAction struct {
	UserID     int64      `json:"user_id"`
	EventID    int64      `json:"event_id"`
	ActionType ActionType `json:"action_type"`
	Timestamp  time.Time  `json:"timestamp"`
}

// Validate rejects domain-invalid ids. Records failing validation are
// skipped without any state change.
func (a UserAction) Validate() error {
	if a.UserID <= 0 {
		return fmt.Errorf("%w: user_id=%d", ErrInvalidID, a.UserID)
	}
	if a.EventID <= 0 {
		return fmt.Errorf("%w: event_id=%d", ErrInvalidID, a.EventID)
	}
	return nil
}

// EventSimilarity is one similarity update for an event pair, keyed
// canonically with EventA < EventB.
type EventSimilarity struct {
	EventA    int64     `json:"event_a"`
	EventB    int64     `json:"event_b"`
	Score     float64   `json:"score"`
	Timestamp time.Time `json:"timestamp"`
}

// RecommendedEvent is a scored query result.
type RecommendedEvent struct {
	EventID int64
	Score   float64
}
