package program

import (
	"fmt"
	"math"
)

// ChangeType of a computed progression update.
type ChangeType string

const (
	ChangeProgress    ChangeType = "progress"
	ChangeStageChange ChangeType = "stage_change"
	ChangeDeload      ChangeType = "deload"
	ChangeRepeat      ChangeType = "repeat"
)

const (
	deloadFactor = 0.85
	// all canonical weights are kg and snap to the smallest plate pair
	weightStepKg = 2.5
)

// Increments configures the per-muscle-group weight increments and the
// deload floor. Zero values are not defaulted here: callers pass
// DefaultIncrements() or a config-derived value.
type Increments struct {
	UpperBodyKg    float64
	LowerBodyKg    float64
	MinBarWeightKg float64
}

func DefaultIncrements() Increments {
	return Increments{
		UpperBodyKg:    2.5,
		LowerBodyKg:    5,
		MinBarWeightKg: 20,
	}
}

func (inc Increments) forMuscleGroup(mg MuscleGroup) float64 {
	if mg == MuscleGroupLower {
		return inc.LowerBodyKg
	}
	return inc.UpperBodyKg
}

// RuleOutput is the computed next progression state for one slot.
type RuleOutput struct {
	Type            ChangeType
	NewWeightKg     float64
	NewStage        Stage
	NewBaseWeightKg *float64
	Reason          string
}

// NextState computes the progression transition for one slot given the
// success/failure outcome of its latest occurrence.
//
//	T1/T2 success            -> progress: weight += increment, stage kept
//	T1/T2 failure, stage 0/1 -> stage_change: weight kept, stage += 1
//	T1/T2 failure, stage 2   -> deload: 85% of current, snapped to 2.5kg,
//	                            floored at the empty bar, stage reset to 0,
//	                            base weight reset
//	T3 success               -> progress: weight += increment, stage stays 0
//	T3 failure               -> repeat: nothing moves, T3 never deloads
//
// customIncrementKg, when non-nil, overrides the muscle-group increment
// for this exercise. An unknown tier panics: the rule table is closed.
func NextState(
	tier Tier,
	currentWeightKg float64,
	stage Stage,
	success bool,
	muscleGroup MuscleGroup,
	inc Increments,
	customIncrementKg *float64,
) RuleOutput {
	// validate the pair early, invalid invocations must fail loudly
	scheme := SchemeFor(tier, stage)

	increment := inc.forMuscleGroup(muscleGroup)
	if customIncrementKg != nil {
		increment = *customIncrementKg
	}

	switch tier {
	case TierT1, TierT2:
		if success {
			return RuleOutput{
				Type:        ChangeProgress,
				NewWeightKg: currentWeightKg + increment,
				NewStage:    stage,
				Reason:      fmt.Sprintf("completed %s, weight goes up %.1fkg", scheme.Display, increment),
			}
		}
		if stage < 2 {
			nextScheme := SchemeFor(tier, stage+1)
			return RuleOutput{
				Type:        ChangeStageChange,
				NewWeightKg: currentWeightKg,
				NewStage:    stage + 1,
				Reason:      fmt.Sprintf("failed %s, moving to %s at the same weight", scheme.Display, nextScheme.Display),
			}
		}
		newWeight := DeloadWeightKg(currentWeightKg, inc.MinBarWeightKg)
		return RuleOutput{
			Type:            ChangeDeload,
			NewWeightKg:     newWeight,
			NewStage:        0,
			NewBaseWeightKg: &newWeight,
			Reason:          fmt.Sprintf("failed %s at the last stage, deload to %.1fkg and restart", scheme.Display, newWeight),
		}
	case TierT3:
		if success {
			return RuleOutput{
				Type:        ChangeProgress,
				NewWeightKg: currentWeightKg + increment,
				NewStage:    0,
				Reason:      fmt.Sprintf("hit %d+ total reps, weight goes up %.1fkg", t3TotalRepsTarget, increment),
			}
		}
		return RuleOutput{
			Type:        ChangeRepeat,
			NewWeightKg: currentWeightKg,
			NewStage:    0,
			Reason:      fmt.Sprintf("under %d total reps, repeat the same weight", t3TotalRepsTarget),
		}
	default:
		panic(fmt.Sprintf("invalid tier %q", tier))
	}
}

// DeloadWeightKg is 85% of the current weight, rounded to the nearest 2.5kg
// (half rounds down: 80.75 -> 80, not 82.5) and never below the empty bar.
func DeloadWeightKg(currentWeightKg, minBarWeightKg float64) float64 {
	deloaded := roundToStepHalfDown(currentWeightKg * deloadFactor)
	return math.Max(minBarWeightKg, deloaded)
}

func roundToStepHalfDown(weightKg float64) float64 {
	return weightStepKg * math.Ceil(weightKg/weightStepKg-0.5)
}
