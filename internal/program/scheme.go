package program

import "fmt"

// RepScheme is the set/rep target of one (tier, stage) pair.
type RepScheme struct {
	Sets       int    `json:"sets"`
	RepsPerSet int    `json:"repsPerSet"`
	// AMRAP marks schemes whose final set is "as many reps as possible"
	AMRAP   bool   `json:"amrap"`
	Display string `json:"display"`
}

var (
	t1Schemes = []RepScheme{
		{Sets: 5, RepsPerSet: 3, AMRAP: true, Display: "5x3+"},
		{Sets: 6, RepsPerSet: 2, AMRAP: true, Display: "6x2+"},
		{Sets: 10, RepsPerSet: 1, AMRAP: true, Display: "10x1+"},
	}
	t2Schemes = []RepScheme{
		{Sets: 3, RepsPerSet: 10, Display: "3x10"},
		{Sets: 3, RepsPerSet: 8, Display: "3x8"},
		{Sets: 3, RepsPerSet: 6, Display: "3x6"},
	}
	t3Scheme = RepScheme{Sets: 3, RepsPerSet: 15, AMRAP: true, Display: "3x15+"}
)

// SchemeFor returns the rep scheme of a (tier, stage) pair. An invalid pair
// is a programmer error and panics; callers are expected to hold stages
// produced by the rules only.
func SchemeFor(tier Tier, stage Stage) RepScheme {
	if stage < 0 || stage > 2 {
		panic(fmt.Sprintf("invalid stage %d for tier %s", stage, tier))
	}
	switch tier {
	case TierT1:
		return t1Schemes[stage]
	case TierT2:
		return t2Schemes[stage]
	case TierT3:
		// single scheme, regardless of stage
		return t3Scheme
	default:
		panic(fmt.Sprintf("invalid tier %q", tier))
	}
}
