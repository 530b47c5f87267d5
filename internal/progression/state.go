package progression

import (
	"time"

	"github.com/2beens/gzclptracker/internal/program"
)

// ManualChangeType marks history entries written by a manual weight
// override instead of a rule output.
const ManualChangeType program.ChangeType = "manual"

// State is the tracked weight/stage of one progression slot. All weights
// are canonical kg; display-unit conversion is up to the consumer.
type State struct {
	ProgressionKey       string        `json:"progressionKey"`
	ExerciseID           string        `json:"exerciseId"`
	CurrentWeightKg      float64       `json:"currentWeightKg"`
	Stage                program.Stage `json:"stage"`
	BaseWeightKg         float64       `json:"baseWeightKg"`
	LastWorkoutID        string        `json:"lastWorkoutId,omitempty"`
	LastWorkoutDate      *time.Time    `json:"lastWorkoutDate,omitempty"`
	AmrapRecord          int           `json:"amrapRecord"`
	AmrapRecordDate      *time.Time    `json:"amrapRecordDate,omitempty"`
	AmrapRecordWorkoutID string        `json:"amrapRecordWorkoutId,omitempty"`
	UpdatedAt            time.Time     `json:"updatedAt"`
}

// HistoryEntry is one appended ledger record. Entries are written exactly
// once per applied change and never edited or reordered.
type HistoryEntry struct {
	ID             int                `json:"id"`
	ProgressionKey string             `json:"progressionKey"`
	Date           time.Time          `json:"date"`
	WorkoutID      string             `json:"workoutId"`
	WeightKg       float64            `json:"weightKg"`
	Stage          program.Stage      `json:"stage"`
	Tier           program.Tier       `json:"tier"`
	Success        bool               `json:"success"`
	AmrapReps      *int               `json:"amrapReps,omitempty"`
	ChangeType     program.ChangeType `json:"changeType"`
}

// AcknowledgedDiscrepancy suppresses re-flagging of a known weight
// mismatch. One row per (exercise, tier); superseded when a different
// actual weight shows up.
type AcknowledgedDiscrepancy struct {
	ExerciseID           string       `json:"exerciseId"`
	Tier                 program.Tier `json:"tier"`
	AcknowledgedWeightKg float64      `json:"acknowledgedWeightKg"`
	CreatedAt            time.Time    `json:"createdAt"`
}

// ProgramState is the process-wide program pointer and completion stats,
// threaded explicitly through apply operations.
type ProgramState struct {
	CurrentDay      program.Day `json:"currentDay"`
	TotalWorkouts   int         `json:"totalWorkouts"`
	LastWorkoutDate *time.Time  `json:"lastWorkoutDate,omitempty"`
}
