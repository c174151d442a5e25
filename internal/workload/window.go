package workload

import (
	"math"
	"time"
)

const (
	acuteWindowDays   = 7
	chronicWindowDays = 28
)

// DailyLoad is the total training load (session RPE * duration, or any
// other load proxy) for one user day. Days without training carry 0.
type DailyLoad struct {
	Date time.Time `json:"date"`
	Load float64   `json:"load"`
}

// Window holds the rolling aggregates computed for one day of a series.
type Window struct {
	Date       time.Time `json:"date"`
	DailyLoad  float64   `json:"dailyLoad"`
	Acute7d    float64   `json:"acute7d"`
	Chronic28d float64   `json:"chronic28d"`
	ACWR       float64   `json:"acwr"`
}

// RiskZone is the injury risk band an ACWR value falls into.
type RiskZone string

const (
	RiskZoneLow      RiskZone = "Low"
	RiskZoneOptimal  RiskZone = "Optimal"
	RiskZoneModerate RiskZone = "Moderate"
	RiskZoneHigh     RiskZone = "High"
)

// ClassifyACWR maps an acute:chronic workload ratio to its risk zone.
func ClassifyACWR(acwr float64) RiskZone {
	switch {
	case acwr < 0.8:
		return RiskZoneLow
	case acwr < 1.3:
		return RiskZoneOptimal
	case acwr < 2.0:
		return RiskZoneModerate
	default:
		return RiskZoneHigh
	}
}

// Options control the rolling window computation.
type Options struct {
	// ActualDayCountDivisor divides each window sum by the number of
	// days actually present instead of the fixed 7/28. The fixed
	// divisor is the default: it intentionally deflates averages early
	// in a series, which reads as a gentle ramp-in for new users.
	ActualDayCountDivisor bool
}

// ComputeWindows computes, for every day of the input series, the 7 day
// acute average, the 28 day chronic average and the acute:chronic
// workload ratio. The input must be ordered by date ascending with one
// entry per day. ACWR is 0 while the chronic average is 0, never NaN.
func ComputeWindows(series []DailyLoad, opts Options) []Window {
	windows := make([]Window, 0, len(series))

	for i, day := range series {
		acuteFrom := i - acuteWindowDays + 1
		if acuteFrom < 0 {
			acuteFrom = 0
		}
		chronicFrom := i - chronicWindowDays + 1
		if chronicFrom < 0 {
			chronicFrom = 0
		}

		var acuteSum, chronicSum float64
		for _, d := range series[acuteFrom : i+1] {
			acuteSum += d.Load
		}
		for _, d := range series[chronicFrom : i+1] {
			chronicSum += d.Load
		}

		acuteDiv, chronicDiv := float64(acuteWindowDays), float64(chronicWindowDays)
		if opts.ActualDayCountDivisor {
			acuteDiv = float64(i + 1 - acuteFrom)
			chronicDiv = float64(i + 1 - chronicFrom)
		}

		acute := acuteSum / acuteDiv
		chronic := chronicSum / chronicDiv

		var acwr float64
		if chronic > 0 {
			acwr = acute / chronic
		}

		windows = append(windows, Window{
			Date:       day.Date,
			DailyLoad:  day.Load,
			Acute7d:    acute,
			Chronic28d: chronic,
			ACWR:       acwr,
		})
	}

	return windows
}

// Round2 rounds to two decimals for display. Full precision is kept
// internally and in comparisons.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
