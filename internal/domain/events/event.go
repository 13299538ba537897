package events

// Op says how an effect combines with the field it targets.
type Op string

const (
	OpAdd      Op = "add"
	OpMultiply Op = "multiply"
)

// Effect is one numeric perturbation. Market-scoped fields hit MarketState;
// team-scoped fields are returned to the orchestrator to apply per team.
//
// Market fields: gdp, inflation, consumerConfidence, unemployment,
// interestRate, fxVolatility, priceCompetition, sustainabilityPremium,
// demand:<segmentID>, demand:* (all segments).
// Team fields: cash, esg, morale, brand:<segmentID>.
type Effect struct {
	Field string
	Op    Op
	Value float64
}

// Choice is one player-facing option on an event. The choice a team submits
// in a later round's decisions selects which effect set applies to that team.
type Choice struct {
	ID      string
	Label   string
	Effects []Effect
}

// GameEvent is a catalog entry: what can happen, not what is happening.
type GameEvent struct {
	ID          string
	Name        string
	Description string
	Category    string

	// TriggerProbability is evaluated once per round from the engine context;
	// zero means the event only activates via facilitator injection.
	TriggerProbability float64

	// MinRound gates early-game shocks
	MinRound int

	DurationRounds int
	Effects        []Effect
	Choices        []Choice

	// Targets limits team-scoped effects; empty means all teams
	Targets []string
}

// ActiveEvent is a live instance with remaining duration. It expires
// automatically when the duration reaches zero.
type ActiveEvent struct {
	Event           GameEvent
	RemainingRounds int
	ActivatedRound  int

	// ChoicesMade maps team ID to the chosen option ID
	ChoicesMade map[string]string
}

// Record is one history-log entry; the log is append-only.
type Record struct {
	Round   int
	EventID string
	Action  string // "activated", "expired", "choice"
	Detail  string
}

// CustomEvent is a facilitator-injected event: no trigger evaluation, just
// activation with the given content.
type CustomEvent struct {
	Title          string
	Description    string
	DurationRounds int
	Effects        []Effect
	Targets        []string
}
