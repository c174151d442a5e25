package finisher

// SelectProtocol picks the protocol whose muscle targets cover the most
// accumulated load. A protocol's score is the sum of the day's load
// scores over its targets, muscles it does not target contribute
// nothing. Ties go to the lowest protocol ID so that repeated runs over
// the same data pick the same protocol.
func SelectProtocol(entries []MuscleLoadEntry, protocols []Protocol) (*Protocol, float64, error) {
	if len(entries) == 0 {
		return nil, 0, ErrNoMuscleLoadData
	}
	if len(protocols) == 0 {
		return nil, 0, ErrNoProtocolsDefined
	}

	loadByMuscle := make(map[string]float64, len(entries))
	for _, entry := range entries {
		loadByMuscle[entry.Muscle] += entry.LoadScore
	}

	var best *Protocol
	var bestScore float64
	for i := range protocols {
		p := &protocols[i]

		var score float64
		for _, muscle := range p.MuscleTargets {
			score += loadByMuscle[muscle]
		}

		// a zero score is a valid outcome, the protocol still wins
		// if nothing scores higher
		if best == nil || score > bestScore || (score == bestScore && p.ID < best.ID) {
			best = p
			bestScore = score
		}
	}

	return best, bestScore, nil
}
