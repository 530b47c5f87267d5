package pending

import (
	"fmt"
	"time"

	"github.com/2beens/gzclptracker/internal/exercises"
	"github.com/2beens/gzclptracker/internal/program"
	"github.com/2beens/gzclptracker/internal/progression"

	"github.com/google/uuid"
)

// changeIDNamespace seeds the deterministic change ids. The same
// (workout, progression key) pair always produces the same id, so a
// re-sync of an unresolved workout merges instead of duplicating.
var changeIDNamespace = uuid.MustParse("5e6f9c2a-1fbb-4b49-9a57-3e2f0a6d8f11")

// ChangeID derives the deterministic id of a change for one workout
// occurrence of one progression slot.
func ChangeID(workoutID, progressionKey string) string {
	return uuid.NewSHA1(changeIDNamespace, []byte(workoutID+"|"+progressionKey)).String()
}

// NewChange builds one reviewable change from an analyzed workout-exercise
// pair and the rule output computed for it. Pure construction, nothing is
// persisted or mutated here.
func NewChange(
	exercise exercises.Exercise,
	state progression.State,
	tier program.Tier,
	analysis program.Analysis,
	ruleOutput program.RuleOutput,
	workoutID string,
	workoutDate time.Time,
) Change {
	change := Change{
		ID:              ChangeID(workoutID, state.ProgressionKey),
		ExerciseID:      exercise.ID,
		ExerciseName:    exercise.Name,
		Tier:            tier,
		Type:            ruleOutput.Type,
		ProgressionKey:  state.ProgressionKey,
		CurrentWeightKg: state.CurrentWeightKg,
		CurrentStage:    state.Stage,
		NewWeightKg:     ruleOutput.NewWeightKg,
		NewStage:        ruleOutput.NewStage,
		NewBaseWeightKg: ruleOutput.NewBaseWeightKg,
		NewScheme:       program.SchemeFor(tier, ruleOutput.NewStage).Display,
		Reason:          ruleOutput.Reason,
		WorkoutID:       workoutID,
		WorkoutDate:     workoutDate,
		CreatedAt:       time.Now(),
		SetsCompleted:   analysis.SetsCompleted,
		SetsTarget:      analysis.SetsTarget,
		Success:         analysis.Success,
	}

	scheme := program.SchemeFor(tier, state.Stage)
	if scheme.AMRAP && analysis.AmrapReps > 0 {
		amrapReps := analysis.AmrapReps
		change.AmrapReps = &amrapReps
		change.NewPR = amrapReps > state.AmrapRecord
	}

	return change
}

// ApplyParamsFor translates a staged change into the ledger commit params.
func ApplyParamsFor(change Change) progression.ApplyChangeParams {
	return progression.ApplyChangeParams{
		PendingChangeID: change.ID,
		ProgressionKey:  change.ProgressionKey,
		ExerciseID:      change.ExerciseID,
		Tier:            change.Tier,
		NewWeightKg:     change.NewWeightKg,
		NewStage:        change.NewStage,
		NewBaseWeightKg: change.NewBaseWeightKg,
		WorkoutID:       change.WorkoutID,
		WorkoutDate:     change.WorkoutDate,
		Success:         change.Success,
		AmrapReps:       change.AmrapReps,
		NewPR:           change.NewPR,
		ChangeType:      change.Type,
	}
}

func (c Change) String() string {
	return fmt.Sprintf(
		"[%s] %s %s: %.1fkg -> %.1fkg (%s)",
		c.Type, c.ExerciseName, c.Tier, c.CurrentWeightKg, c.NewWeightKg, c.NewScheme,
	)
}
