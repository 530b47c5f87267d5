package exercises

import (
	"time"

	"github.com/2beens/gzclptracker/internal/program"
)

// Exercise is one configured exercise: the link between a Hevy exercise
// template and the GZCLP role it occupies. Main-lift roles are held by at
// most one exercise at a time; any number of exercises can be t3.
type Exercise struct {
	ID                string              `json:"id"`
	HevyTemplateID    string              `json:"hevyTemplateId"`
	Name              string              `json:"name"`
	Role              program.Role        `json:"role"`
	MuscleGroup       program.MuscleGroup `json:"muscleGroup"`
	CustomIncrementKg *float64            `json:"customIncrementKg,omitempty"`
	CreatedAt         time.Time           `json:"createdAt"`
}

// ProgressionKeys returns the progression keys this exercise's role owns.
// A main lift owns a T1 and a T2 slot (it trains at both tiers across the
// rotation); a t3 exercise owns the single slot keyed by its id.
func (e Exercise) ProgressionKeys() []string {
	if e.Role == program.RoleT3 {
		return []string{e.ID}
	}
	return []string{
		program.MainLiftKey(e.Role, program.TierT1),
		program.MainLiftKey(e.Role, program.TierT2),
	}
}

// EffectiveMuscleGroup is the muscle group used for increment selection:
// fixed per role for main lifts, configured per exercise for t3.
func (e Exercise) EffectiveMuscleGroup() program.MuscleGroup {
	if e.Role == program.RoleT3 {
		if e.MuscleGroup != "" {
			return e.MuscleGroup
		}
		return program.MuscleGroupUpper
	}
	return program.MuscleGroupForRole(e.Role)
}
