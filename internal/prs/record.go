package prs

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrRecordNotFound = errors.New("personal record not found")
	ErrNotImproved    = errors.New("personal record not improved")
)

// RecordType is the kind of personal record being tracked per exercise.
type RecordType string

const (
	RecordType1RM      RecordType = "1rm"
	RecordType3RM      RecordType = "3rm"
	RecordTypeVelocity RecordType = "velocity"
)

func (t RecordType) IsValid() bool {
	switch t {
	case RecordType1RM, RecordType3RM, RecordTypeVelocity:
		return true
	}
	return false
}

// Record is the best value a user has achieved for one exercise and
// record type.
type Record struct {
	ID         int        `json:"id"`
	UserID     string     `json:"userId"`
	Exercise   string     `json:"exercise"`
	Type       RecordType `json:"type"`
	Value      float64    `json:"value"`
	AchievedAt time.Time  `json:"achievedAt"`
}

// Observation is a single logged set: weight lifted for a number of
// reps, optionally with bar velocity and perceived exertion.
type Observation struct {
	UserID    string    `json:"userId"`
	Exercise  string    `json:"exercise"`
	Weight    float64   `json:"weight"`
	Reps      int       `json:"reps"`
	Velocity  *float64  `json:"velocity,omitempty"`
	RPE       *int      `json:"rpe,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (o Observation) Validate() error {
	if o.UserID == "" {
		return errors.New("user id is required")
	}
	if o.Exercise == "" {
		return errors.New("exercise is required")
	}
	if o.Weight < 0 {
		return fmt.Errorf("weight [%.2f] cannot be negative", o.Weight)
	}
	if o.Reps < 1 {
		return fmt.Errorf("reps [%d] must be at least 1", o.Reps)
	}
	if o.Velocity != nil && *o.Velocity < 0 {
		return fmt.Errorf("velocity [%.2f] cannot be negative", *o.Velocity)
	}
	if o.RPE != nil && (*o.RPE < 1 || *o.RPE > 10) {
		return fmt.Errorf("rpe [%d] out of range, must be 1 to 10", *o.RPE)
	}
	return nil
}
