package readiness

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFourFactorScore(t *testing.T) {
	score := FourFactorScore(FourFactorInput{
		HRVRmssd:      80,
		SleepMinutes:  400,
		SorenessScore: 3,
		JumpHeightCm:  40,
	})
	assert.Equal(t, 80, score)
}

func TestFourFactorScore_AllInputsMissing(t *testing.T) {
	// no data means no evidence of recovery, not "assume fine"
	assert.Equal(t, 0, FourFactorScore(FourFactorInput{}))
}

func TestFourFactorScore_PartialInputs(t *testing.T) {
	score := FourFactorScore(FourFactorInput{
		HRVRmssd:     100,
		SleepMinutes: 480,
	})
	assert.Equal(t, 50, score, "two saturated factors out of four")
}

func TestFourFactorScore_Saturated(t *testing.T) {
	score := FourFactorScore(FourFactorInput{
		HRVRmssd:      150,
		SleepMinutes:  600,
		SorenessScore: 1,
		JumpHeightCm:  70,
	})
	assert.Equal(t, 100, score)
}

func floatPtr(v float64) *float64 { return &v }

func TestCompositeScore(t *testing.T) {
	score := CompositeScore(CompositeInput{
		HRV:        floatPtr(80),
		RestingHR:  floatPtr(70),
		SleepScore: floatPtr(90),
		Soreness:   floatPtr(60),
		Motivation: floatPtr(50),
	})
	// 0.3*80 + 0.2*70 + 0.25*90 + 0.15*60 + 0.1*50 = 74.5
	assert.Equal(t, 75, score)
}

func TestCompositeScore_AbsentFactorsExcluded(t *testing.T) {
	score := CompositeScore(CompositeInput{
		HRV:        floatPtr(80),
		SleepScore: floatPtr(90),
	})
	// (0.3*80 + 0.25*90) / 0.55 = 84.55
	assert.Equal(t, 85, score, "missing factors must not drag the composite score down")
}

func TestCompositeScore_SingleFactor(t *testing.T) {
	score := CompositeScore(CompositeInput{Motivation: floatPtr(42)})
	assert.Equal(t, 42, score, "a single factor passes through at full weight")
}

func TestCompositeScore_NoInputs(t *testing.T) {
	assert.Equal(t, 0, CompositeScore(CompositeInput{}))
}
