package round

import (
	"github.com/quarterdesk/phonesim-go/internal/domain/achievements"
	"github.com/quarterdesk/phonesim-go/internal/domain/company"
	"github.com/quarterdesk/phonesim-go/internal/domain/events"
	"github.com/quarterdesk/phonesim-go/internal/domain/market"
	"github.com/quarterdesk/phonesim-go/internal/domain/modules"
	"github.com/quarterdesk/phonesim-go/internal/domain/shared"
)

// TeamInput is one team's contribution to a round: its persisted state, its
// submitted decisions (immutable), and its achievement progress.
type TeamInput struct {
	ID        string
	State     *company.TeamState
	Decisions *modules.Decisions
	Progress  *achievements.Progress
}

// Input is everything ProcessRound needs. It is a pure function of this
// struct plus the seed; there is no hidden global state.
type Input struct {
	GameSeed    int64
	RoundNumber int

	// Teams in a stable, caller-supplied order; the order is part of the
	// deterministic input.
	Teams []TeamInput

	MarketState *market.MarketState
	EventState  *events.State

	// InjectedEvents are facilitator-injected custom events for this round
	InjectedEvents []events.CustomEvent
}

// FinancialSummary is the round's P&L digest for one team.
type FinancialSummary struct {
	ModuleCosts   float64
	ModuleRevenue float64
	SalesRevenue  float64
	NetIncome     float64
	EPS           float64
	ClosingCash   float64
}

// CompetitorAction is a redacted digest of what a rival did, visible to every
// team. Internal errors of other teams are never included.
type CompetitorAction struct {
	TeamID  string
	Summary string
}

// TeamRoundResult is one team's append-only record of a round.
type TeamRoundResult struct {
	TeamID string
	Round  int

	State         *company.TeamState
	ModuleResults []*shared.ModuleResult
	Sales         []market.SegmentSales

	Financial         FinancialSummary
	CompetitorActions []CompetitorAction

	OverallRank     int
	EPSRank         int
	MarketShareRank int

	NewAwards []achievements.Award
	Progress  *achievements.Progress
}

// Output is the resolved round. All fields are new values; inputs are not
// mutated.
type Output struct {
	Round       int
	Results     []TeamRoundResult
	Rankings    market.Rankings
	MarketState *market.MarketState
	EventState  *events.State
}
