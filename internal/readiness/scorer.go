package readiness

import "math"

// FourFactorInput are the inputs of the default scoring mode. A zero
// SorenessScore means no soreness was logged that day and the factor
// contributes 0, it is NOT treated as "no soreness".
type FourFactorInput struct {
	HRVRmssd      float64
	SleepMinutes  float64
	SorenessScore int
	JumpHeightCm  float64
}

// FourFactorScore computes the default readiness score: four equally
// weighted normalized factors, scaled to an integer 0-100. Absent
// inputs stay at their zero value and drag the score down, which is
// deliberate: no data means no evidence of recovery.
func FourFactorScore(in FourFactorInput) int {
	var sorenessNorm float64
	if in.SorenessScore > 0 {
		sorenessNorm = NormalizeSoreness(float64(in.SorenessScore))
	}

	sum := 0.25*NormalizeHRV(in.HRVRmssd) +
		0.25*NormalizeSleep(in.SleepMinutes) +
		0.25*sorenessNorm +
		0.25*NormalizeJump(in.JumpHeightCm)

	return int(math.Round(sum * 100))
}

// Composite mode weights. Factors whose input is absent are excluded
// from both the weighted sum and the weight total, so missing inputs
// do not penalize the score in this mode.
const (
	weightHRV        = 0.30
	weightRestingHR  = 0.20
	weightSleepScore = 0.25
	weightSoreness   = 0.15
	weightMotivation = 0.10
)

// CompositeInput holds the richer per-factor sub-scores, each already
// on a 0-100 scale. Nil means the factor was not measured.
type CompositeInput struct {
	HRV        *float64
	RestingHR  *float64
	SleepScore *float64
	Soreness   *float64
	Motivation *float64
}

// CompositeScore computes the alternate weighted readiness score used
// when richer inputs are available. Returns 0 when no factor is present.
func CompositeScore(in CompositeInput) int {
	var weightedSum, totalWeight float64

	add := func(value *float64, weight float64) {
		if value == nil {
			return
		}
		weightedSum += weight * *value
		totalWeight += weight
	}

	add(in.HRV, weightHRV)
	add(in.RestingHR, weightRestingHR)
	add(in.SleepScore, weightSleepScore)
	add(in.Soreness, weightSoreness)
	add(in.Motivation, weightMotivation)

	if totalWeight == 0 {
		return 0
	}

	return int(math.Round(weightedSum / totalWeight))
}
