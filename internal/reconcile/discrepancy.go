package reconcile

import (
	"math"
	"time"

	"github.com/2beens/gzclptracker/internal/program"
	"github.com/2beens/gzclptracker/internal/progression"
)

// weightEpsilon absorbs float drift when comparing logged weights against
// the tracked state. Real plate math never produces differences this small.
const weightEpsilon = 0.01

// Discrepancy is a mismatch between what the tracker expected to be lifted
// and what a synced workout actually recorded. Detection never mutates the
// tracked state, the user decides through the resolve endpoint.
type Discrepancy struct {
	ExerciseID       string       `json:"exerciseId"`
	ExerciseName     string       `json:"exerciseName"`
	Tier             program.Tier `json:"tier"`
	ProgressionKey   string       `json:"progressionKey"`
	ExpectedWeightKg float64      `json:"expectedWeightKg"`
	ActualWeightKg   float64      `json:"actualWeightKg"`
	WorkoutID        string       `json:"workoutId"`
	WorkoutDate      time.Time    `json:"workoutDate"`
}

// Detector compares logged weights against tracked weights, suppressing
// mismatches the user has already acknowledged for that exercise+tier slot.
type Detector struct {
	acked map[ackKey]float64
}

type ackKey struct {
	exerciseID string
	tier       program.Tier
}

func NewDetector(acks []progression.AcknowledgedDiscrepancy) *Detector {
	acked := make(map[ackKey]float64, len(acks))
	for _, ack := range acks {
		acked[ackKey{exerciseID: ack.ExerciseID, tier: ack.Tier}] = ack.AcknowledgedWeightKg
	}
	return &Detector{
		acked: acked,
	}
}

// Check reports whether the logged weight disagrees with the tracked one.
// An acknowledged weight silences further reports for that exact weight; a
// different mismatch on the same slot still surfaces.
func (d *Detector) Check(
	exerciseID, exerciseName string,
	tier program.Tier,
	progressionKey string,
	expectedWeightKg, actualWeightKg float64,
	workoutID string,
	workoutDate time.Time,
) *Discrepancy {
	if math.Abs(expectedWeightKg-actualWeightKg) < weightEpsilon {
		return nil
	}
	if ackedWeight, ok := d.acked[ackKey{exerciseID: exerciseID, tier: tier}]; ok {
		if math.Abs(ackedWeight-actualWeightKg) < weightEpsilon {
			return nil
		}
	}
	return &Discrepancy{
		ExerciseID:       exerciseID,
		ExerciseName:     exerciseName,
		Tier:             tier,
		ProgressionKey:   progressionKey,
		ExpectedWeightKg: expectedWeightKg,
		ActualWeightKg:   actualWeightKg,
		WorkoutID:        workoutID,
		WorkoutDate:      workoutDate,
	}
}
