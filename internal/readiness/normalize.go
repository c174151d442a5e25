package readiness

// Reference values against which raw recovery inputs are normalized to [0, 1].
// Anything at or above the reference saturates at 1.
const (
	referenceHRVRmssd     = 100.0
	referenceSleepMinutes = 480.0
	referenceJumpHeightCm = 50.0
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// NormalizeHRV maps an rMSSD value (ms) to [0, 1] against a 100ms reference.
func NormalizeHRV(hrvRmssd float64) float64 {
	return clamp01(hrvRmssd / referenceHRVRmssd)
}

// NormalizeSleep maps sleep duration (minutes) to [0, 1] against a full
// 8 hour night.
func NormalizeSleep(sleepMinutes float64) float64 {
	return clamp01(sleepMinutes / referenceSleepMinutes)
}

// NormalizeSoreness maps a 1-10 soreness score to [0, 1], inverted so
// that no soreness scores highest: 1 -> 1.0, 10 -> 0.0.
func NormalizeSoreness(score float64) float64 {
	return clamp01((10 - score) / 9)
}

// NormalizeJump maps a countermovement jump height (cm) to [0, 1]
// against a 50cm reference.
func NormalizeJump(heightCm float64) float64 {
	return clamp01(heightCm / referenceJumpHeightCm)
}
