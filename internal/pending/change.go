package pending

import (
	"time"

	"github.com/2beens/gzclptracker/internal/program"
)

// Change is one computed-but-unconfirmed progression update, staged for
// user review. It never mutates the ledger itself; applying it through the
// queue performs the transition.
type Change struct {
	ID              string             `json:"id"`
	ExerciseID      string             `json:"exerciseId"`
	ExerciseName    string             `json:"exerciseName"`
	Tier            program.Tier       `json:"tier"`
	Type            program.ChangeType `json:"type"`
	ProgressionKey  string             `json:"progressionKey"`
	CurrentWeightKg float64            `json:"currentWeightKg"`
	CurrentStage    program.Stage      `json:"currentStage"`
	NewWeightKg     float64            `json:"newWeightKg"`
	NewStage        program.Stage      `json:"newStage"`
	NewBaseWeightKg *float64           `json:"newBaseWeightKg,omitempty"`
	NewScheme       string             `json:"newScheme"`
	Reason          string             `json:"reason"`
	WorkoutID       string             `json:"workoutId"`
	WorkoutDate     time.Time          `json:"workoutDate"`
	CreatedAt       time.Time          `json:"createdAt"`
	AmrapReps       *int               `json:"amrapReps,omitempty"`
	NewPR           bool               `json:"newPR"`
	SetsCompleted   int                `json:"setsCompleted"`
	SetsTarget      int                `json:"setsTarget"`
	Success         bool               `json:"success"`
}
