package achievements

// Tier determines an achievement's point value. Infamy is negative: a badge
// nobody wants, awarded for notably poor performance.
type Tier string

const (
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
	TierSecret   Tier = "secret"
	TierInfamy   Tier = "infamy"
)

// Points returns the tier's point value.
func (t Tier) Points() int {
	switch t {
	case TierBronze:
		return 10
	case TierSilver:
		return 25
	case TierGold:
		return 50
	case TierPlatinum:
		return 100
	case TierSecret:
		return 75
	case TierInfamy:
		return -25
	default:
		return 0
	}
}

// RequirementKind selects how a requirement is evaluated.
type RequirementKind string

const (
	// KindThreshold: a metric crosses a value this round
	KindThreshold RequirementKind = "threshold"
	// KindSustained: a metric holds a threshold for N consecutive rounds
	KindSustained RequirementKind = "sustained"
	// KindCustom: a precomputed boolean flag supplied by the orchestrator
	KindCustom RequirementKind = "custom"
)

// Comparison direction for threshold and sustained requirements.
type Comparison string

const (
	AtLeast Comparison = "gte"
	AtMost  Comparison = "lte"
)

// Requirement is one condition of an achievement; all of an achievement's
// requirements must hold for it to be awarded.
type Requirement struct {
	Kind    RequirementKind
	Metric  string // metric name, or flag name for KindCustom
	Compare Comparison
	Value   float64
	Rounds  int // consecutive rounds, KindSustained only
}

// Achievement is a static catalog entry. The catalog is versioned read-only
// configuration; the engine never mutates it.
type Achievement struct {
	ID           string
	Name         string
	Description  string
	Category     string
	Tier         Tier
	Requirements []Requirement
}

// Award is one badge granted to a team. Permanent: awards are never revoked.
type Award struct {
	AchievementID string
	Round         int
	Points        int
}
