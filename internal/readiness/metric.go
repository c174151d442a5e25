package readiness

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrDailyMetricNotFound   = errors.New("daily metric not found")
	ErrSorenessEntryNotFound = errors.New("soreness entry not found")
	ErrJumpTestNotFound      = errors.New("jump test not found")
)

// DailyMetric holds the wearable-sourced recovery inputs for one user day.
type DailyMetric struct {
	UserID       string    `json:"userId"`
	Date         time.Time `json:"date"`
	HRVRmssd     float64   `json:"hrvRmssd"`
	SleepMinutes float64   `json:"sleepMinutes"`
}

// SorenessEntry is a self-reported muscle soreness score, 1 (none) to 10 (severe).
// One entry per user per day, last write wins.
type SorenessEntry struct {
	UserID string    `json:"userId"`
	Date   time.Time `json:"date"`
	Score  int       `json:"score"`
}

func (e SorenessEntry) Validate() error {
	if e.UserID == "" {
		return errors.New("user id is required")
	}
	if e.Score < 1 || e.Score > 10 {
		return fmt.Errorf("soreness score [%d] out of range, must be 1 to 10", e.Score)
	}
	return nil
}

// JumpTest is a countermovement jump height measurement in centimeters.
type JumpTest struct {
	UserID   string    `json:"userId"`
	Date     time.Time `json:"date"`
	HeightCm float64   `json:"heightCm"`
}

func (j JumpTest) Validate() error {
	if j.UserID == "" {
		return errors.New("user id is required")
	}
	if j.HeightCm < 0 {
		return fmt.Errorf("jump height [%.2f] cannot be negative", j.HeightCm)
	}
	return nil
}

// Result is the computed readiness for a user day, together with the
// raw inputs that produced it. Absent inputs show up as zero values.
type Result struct {
	UserID         string    `json:"userId"`
	Date           time.Time `json:"date"`
	ReadinessScore int       `json:"readinessScore"`
	HRVRmssd       float64   `json:"hrvRmssd"`
	SleepMinutes   float64   `json:"sleepMinutes"`
	SorenessScore  int       `json:"sorenessScore"`
	JumpHeightCm   float64   `json:"jumpHeightCm"`
}
