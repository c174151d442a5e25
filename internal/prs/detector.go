package prs

// Epley estimated rep max formulas. The 3RM variant uses a steeper
// divisor so that low rep sets project a tighter triple.

// Estimate1RM estimates the one rep max from a set of weight x reps.
// A single rep set already is a one rep max observation, so no
// estimation applies and the weight comes back unchanged.
func Estimate1RM(weight float64, reps int) float64 {
	if reps == 1 {
		return weight
	}
	return weight * (1 + float64(reps)/30)
}

// Estimate3RM estimates the three rep max from a set of weight x reps.
func Estimate3RM(weight float64, reps int) float64 {
	return weight * (1 + float64(reps)/10)
}

// Candidate is a potential personal record derived from an observation.
type Candidate struct {
	Type  RecordType
	Value float64
}

// Candidates derives the record candidates an observation can produce.
// Weight and reps always yield estimated 1RM and 3RM candidates, a bar
// velocity measurement additionally yields a velocity candidate with
// the raw value passed through.
func Candidates(obs Observation) []Candidate {
	candidates := []Candidate{
		{Type: RecordType1RM, Value: Estimate1RM(obs.Weight, obs.Reps)},
		{Type: RecordType3RM, Value: Estimate3RM(obs.Weight, obs.Reps)},
	}
	if obs.Velocity != nil {
		candidates = append(candidates, Candidate{
			Type:  RecordTypeVelocity,
			Value: *obs.Velocity,
		})
	}
	return candidates
}

// Improves reports whether a candidate value beats the current best.
// Strictly greater: matching an existing record is not a new record.
func Improves(candidate float64, current *Record) bool {
	if current == nil {
		return true
	}
	return candidate > current.Value
}
