package program

import "fmt"

// Tier of a GZCLP slot: T1 primary compound, T2 secondary compound, T3 accessory.
type Tier string

const (
	TierT1 Tier = "T1"
	TierT2 Tier = "T2"
	TierT3 Tier = "T3"
)

// Stage is the rep-scheme step within T1/T2 progression (0, 1 or 2).
// T3 has a single scheme, its stage is always 0.
type Stage int

// Role of a configured exercise. The four main-lift roles are globally
// unique (one exercise per role); t3 exercises are not.
type Role string

const (
	RoleSquat    Role = "squat"
	RoleBench    Role = "bench"
	RoleOHP      Role = "ohp"
	RoleDeadlift Role = "deadlift"
	RoleT3       Role = "t3"
)

func (r Role) IsMainLift() bool {
	switch r {
	case RoleSquat, RoleBench, RoleOHP, RoleDeadlift:
		return true
	default:
		return false
	}
}

type MuscleGroup string

const (
	MuscleGroupUpper MuscleGroup = "upper"
	MuscleGroupLower MuscleGroup = "lower"
)

// MuscleGroupForRole returns the fixed muscle group of a main-lift role.
// T3 exercises carry their own muscle group in configuration.
func MuscleGroupForRole(role Role) MuscleGroup {
	switch role {
	case RoleSquat, RoleDeadlift:
		return MuscleGroupLower
	case RoleBench, RoleOHP:
		return MuscleGroupUpper
	default:
		return MuscleGroupUpper
	}
}

// Day of the fixed 4-day GZCLP rotation.
type Day string

const (
	DayA1 Day = "A1"
	DayB1 Day = "B1"
	DayA2 Day = "A2"
	DayB2 Day = "B2"
)

var Days = []Day{DayA1, DayB1, DayA2, DayB2}

// Next returns the cyclic successor in the A1 -> B1 -> A2 -> B2 -> A1 rotation.
func (d Day) Next() Day {
	for i, day := range Days {
		if day == d {
			return Days[(i+1)%len(Days)]
		}
	}
	// unknown pointer value, restart the cycle
	return DayA1
}

func (d Day) Valid() bool {
	for _, day := range Days {
		if day == d {
			return true
		}
	}
	return false
}

// dayAssignments holds the tier each main-lift role occupies on each day.
// The same physical lift sits at T1 on one day and T2 on another.
var dayAssignments = map[Day]map[Role]Tier{
	DayA1: {RoleSquat: TierT1, RoleBench: TierT2},
	DayB1: {RoleOHP: TierT1, RoleDeadlift: TierT2},
	DayA2: {RoleBench: TierT1, RoleSquat: TierT2},
	DayB2: {RoleDeadlift: TierT1, RoleOHP: TierT2},
}

// TierForRole resolves the tier of a role on the given program day.
// T3 exercises are T3 on every day. The second return value is false
// when the role does not train on that day.
func TierForRole(day Day, role Role) (Tier, bool) {
	if role == RoleT3 {
		return TierT3, true
	}
	tier, ok := dayAssignments[day][role]
	return tier, ok
}

// MainLiftKey builds the progression key of a main lift slot, e.g. "squat-T1".
// T3 exercises use their exercise id as the key instead, since they track
// a single weight/stage slot.
func MainLiftKey(role Role, tier Tier) string {
	return fmt.Sprintf("%s-%s", role, tier)
}

// KeyFor resolves the progression key for an exercise occurrence.
func KeyFor(role Role, tier Tier, exerciseID string) string {
	if role == RoleT3 {
		return exerciseID
	}
	return MainLiftKey(role, tier)
}
