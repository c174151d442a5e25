package finisher

import (
	"errors"
	"time"
)

var (
	ErrSessionNotFound    = errors.New("training session not found")
	ErrProtocolNotFound   = errors.New("mobility protocol not found")
	ErrNoMuscleLoadData   = errors.New("no muscle load data for session day")
	ErrNoProtocolsDefined = errors.New("no mobility protocols defined")
)

// Protocol is a short guided mobility routine targeting a set of
// muscle groups, prescribed after a training session.
type Protocol struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	MuscleTargets   []string `json:"muscleTargets"`
	Steps           []Step   `json:"steps"`
	DurationMinutes int      `json:"durationMinutes"`
}

type Step struct {
	Name            string `json:"name"`
	DurationSeconds int    `json:"durationSeconds"`
}

// MuscleLoadEntry is the accumulated load one muscle group took on a
// given user day.
type MuscleLoadEntry struct {
	UserID    string    `json:"userId"`
	Date      time.Time `json:"date"`
	Muscle    string    `json:"muscle"`
	LoadScore float64   `json:"loadScore"`
}

// Session is the training session a finisher gets attached to.
type Session struct {
	ID     int       `json:"id"`
	UserID string    `json:"userId"`
	Date   time.Time `json:"date"`
}

// Assignment links a protocol to a session, at most one per session.
type Assignment struct {
	SessionID    int  `json:"sessionId"`
	ProtocolID   int  `json:"protocolId"`
	AutoAssigned bool `json:"autoAssigned"`
}
