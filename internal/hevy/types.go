package hevy

import "time"

// Workout is one logged training session as returned by the Hevy public API.
type Workout struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	RoutineID string            `json:"routine_id"`
	StartTime time.Time         `json:"start_time"`
	EndTime   time.Time         `json:"end_time"`
	Exercises []WorkoutExercise `json:"exercises"`
}

type WorkoutExercise struct {
	Index              int    `json:"index"`
	Title              string `json:"title"`
	ExerciseTemplateID string `json:"exercise_template_id"`
	Sets               []Set  `json:"sets"`
}

type Set struct {
	Index    int     `json:"index"`
	Type     string  `json:"type"` // normal, warmup, failure, dropset
	WeightKg float64 `json:"weight_kg"`
	Reps     int     `json:"reps"`
}

// IsWarmup reports whether the set should be excluded from analysis.
func (s Set) IsWarmup() bool {
	return s.Type == "warmup"
}

type workoutsPageResponse struct {
	Page      int       `json:"page"`
	PageCount int       `json:"page_count"`
	Workouts  []Workout `json:"workouts"`
}
