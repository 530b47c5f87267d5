package program

// t3TotalRepsTarget is the fixed total-rep threshold deciding T3 success,
// independent of how the reps are spread across sets.
const t3TotalRepsTarget = 25

// LoggedSet is one completed set as reported by the workout source.
type LoggedSet struct {
	Reps     int     `json:"reps"`
	WeightKg float64 `json:"weightKg"`
}

// Analysis is the outcome classification of one exercise occurrence.
type Analysis struct {
	Success   bool `json:"success"`
	TotalReps int  `json:"totalReps"`
	// AmrapReps holds the reps of the final logged set
	AmrapReps     int `json:"amrapReps"`
	SetsCompleted int `json:"setsCompleted"`
	SetsTarget    int `json:"setsTarget"`
}

// Analyze classifies the logged sets of one exercise occurrence as
// success or failure for the given tier and stage.
//
// T1/T2: success iff every set of the scheme met or exceeded its rep target.
// Reps above target on the AMRAP set do not change the classification, they
// only feed PR detection. Missing sets count as failed sets.
//
// T3: success iff the total reps across all logged sets reach the fixed
// threshold of 25, regardless of set count.
//
// An empty set list always classifies as failure, never as an error: the
// progression must produce a deterministic next state for whatever the
// workout source returns.
func Analyze(tier Tier, stage Stage, sets []LoggedSet) Analysis {
	scheme := SchemeFor(tier, stage)

	analysis := Analysis{
		SetsTarget: scheme.Sets,
	}

	if len(sets) == 0 {
		return analysis
	}

	for _, s := range sets {
		analysis.TotalReps += s.Reps
	}
	analysis.AmrapReps = sets[len(sets)-1].Reps

	if tier == TierT3 {
		for _, s := range sets {
			if s.Reps >= scheme.RepsPerSet {
				analysis.SetsCompleted++
			}
		}
		analysis.Success = analysis.TotalReps >= t3TotalRepsTarget
		return analysis
	}

	// T1/T2: evaluate the first scheme.Sets logged sets against the target,
	// extra sets beyond the scheme are ignored
	evaluated := sets
	if len(evaluated) > scheme.Sets {
		evaluated = evaluated[:scheme.Sets]
		analysis.AmrapReps = evaluated[len(evaluated)-1].Reps
	}

	success := len(evaluated) == scheme.Sets
	for _, s := range evaluated {
		if s.Reps >= scheme.RepsPerSet {
			analysis.SetsCompleted++
		} else {
			success = false
		}
	}

	analysis.Success = success
	return analysis
}
