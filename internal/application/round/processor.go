package round

import (
	"fmt"
	"strings"

	"github.com/quarterdesk/phonesim-go/internal/domain/achievements"
	"github.com/quarterdesk/phonesim-go/internal/domain/company"
	"github.com/quarterdesk/phonesim-go/internal/domain/events"
	"github.com/quarterdesk/phonesim-go/internal/domain/logistics"
	"github.com/quarterdesk/phonesim-go/internal/domain/market"
	"github.com/quarterdesk/phonesim-go/internal/domain/modules"
	"github.com/quarterdesk/phonesim-go/internal/domain/shared"
)

// roundSeedStride separates per-round random streams derived from one game
// seed. Prime, so consecutive rounds never share a stream prefix.
const roundSeedStride = 1_000_003

// Processor composes the module resolvers, market engine, event engine, and
// achievement engine into one synchronous, deterministic round resolution.
type Processor struct {
	modules      []modules.Module
	market       *market.Engine
	events       *events.Engine
	achievements *achievements.Engine
	routes       *logistics.Catalog
}

// NewProcessor wires a processor with default engines and catalogs.
func NewProcessor() *Processor {
	return &Processor{
		modules:      modules.All(),
		market:       market.NewEngine(market.DefaultWeights()),
		events:       events.NewEngine(events.DefaultCatalog()),
		achievements: achievements.NewEngine(achievements.DefaultCatalog()),
		routes:       logistics.DefaultCatalog(),
	}
}

// NewProcessorWith wires a processor with explicit collaborators, for
// calibration overrides and tests.
func NewProcessorWith(
	marketEngine *market.Engine,
	eventEngine *events.Engine,
	achievementEngine *achievements.Engine,
	routes *logistics.Catalog,
) *Processor {
	return &Processor{
		modules:      modules.All(),
		market:       marketEngine,
		events:       eventEngine,
		achievements: achievementEngine,
		routes:       routes,
	}
}

// Process resolves one round. Inputs are never mutated; every returned value
// is newly constructed. For a fixed input, two calls produce identical
// outputs: all randomness flows through one engine context seeded from the
// game seed and round number.
func (p *Processor) Process(input Input) (*Output, error) {
	if input.GameSeed == 0 {
		return nil, shared.ErrInvalidSeed
	}
	if input.MarketState == nil {
		return nil, fmt.Errorf("market state is required")
	}
	for _, team := range input.Teams {
		if team.ID == "" {
			return nil, shared.ErrInvalidTeamID
		}
	}

	ctx := shared.NewEngineContext(input.GameSeed + int64(input.RoundNumber)*roundSeedStride)
	marketState := input.MarketState.Clone()
	eventState := eventStateOrEmpty(input.EventState)

	env := &modules.Env{
		Round:  input.RoundNumber,
		Ctx:    ctx,
		Market: marketState,
		Routes: p.routes,
	}

	// Phase 1: per-team module resolution, in caller order. Teams only read
	// the shared market state here; they cannot observe each other.
	resolved := make([]*teamWork, 0, len(input.Teams))
	for _, team := range input.Teams {
		resolved = append(resolved, p.resolveTeam(team, env))
	}

	// Phase 2: market clearing, the one cross-team step.
	offerings := p.collectOfferings(resolved)
	sales := p.market.Clear(marketState, offerings)
	p.applySales(resolved, sales)

	// Phase 3: events advance the shared market state for the next round.
	teamIDs := make([]string, len(resolved))
	choices := make(map[string]map[string]string)
	for i, work := range resolved {
		teamIDs[i] = work.id
		if work.decisions != nil && len(work.decisions.EventChoices) > 0 {
			choices[work.id] = work.decisions.EventChoices
		}
	}
	marketState.Round = input.RoundNumber
	market.AdvanceDemand(marketState)
	teamEffects := p.events.Advance(eventState, marketState, input.RoundNumber,
		teamIDs, ctx, input.InjectedEvents, choices)
	for _, work := range resolved {
		applyTeamEffects(work.state, teamEffects[work.id])
	}

	// Phase 4: rankings and achievements.
	standings := p.standings(resolved)
	rankings := market.Rank(standings)

	results := make([]TeamRoundResult, 0, len(resolved))
	for _, work := range resolved {
		results = append(results, p.finishTeam(work, input, rankings, resolved))
	}

	return &Output{
		Round:       input.RoundNumber,
		Results:     results,
		Rankings:    rankings,
		MarketState: marketState,
		EventState:  eventState,
	}, nil
}

// teamWork is the per-team scratch space for one round.
type teamWork struct {
	id        string
	prev      *company.TeamState
	state     *company.TeamState
	decisions *modules.Decisions
	progress  *achievements.Progress
	results   []*shared.ModuleResult
	sales     []market.SegmentSales

	salesRevenue float64
	unitsSold    int
	lateOrders   int
}

func (p *Processor) resolveTeam(team TeamInput, env *modules.Env) *teamWork {
	work := &teamWork{
		id:        team.ID,
		prev:      team.State,
		state:     team.State,
		decisions: team.Decisions,
		progress:  progressOrEmpty(team.Progress, team.ID),
	}
	for _, module := range p.modules {
		next, result := modules.Resolve(module, work.state, team.Decisions, env)
		work.state = next
		work.results = append(work.results, result)
		if module.Name() == shared.ModuleFactory {
			work.lateOrders = int(result.Changes["inspectedShipments"])
		}
	}
	return work
}

func (p *Processor) collectOfferings(resolved []*teamWork) []market.Offering {
	var offerings []market.Offering
	for _, work := range resolved {
		state := work.state
		var adBudgets map[string]float64
		if work.decisions != nil {
			adBudgets = work.decisions.Marketing.AdBudgets
		}
		for _, product := range state.Products {
			if !product.Launched {
				continue
			}
			offerings = append(offerings, market.Offering{
				TeamID:    work.id,
				SegmentID: product.SegmentID,
				Price:     product.Price,
				Quality:   product.Quality,
				Features:  product.Features,
				Brand:     state.BrandValue[product.SegmentID],
				AdSpend:   adBudgets[product.SegmentID],
				ESG:       state.ESGScore,
				Capacity:  state.SegmentCapacity(product.SegmentID),
			})
		}
	}
	return offerings
}

// applySales lands market revenue on each team and computes net income:
// sales revenue plus the net of every module result.
func (p *Processor) applySales(resolved []*teamWork, sales []market.SegmentSales) {
	byTeam := make(map[string][]market.SegmentSales)
	for _, s := range sales {
		byTeam[s.TeamID] = append(byTeam[s.TeamID], s)
	}
	for _, work := range resolved {
		work.sales = byTeam[work.id]
		for _, s := range work.sales {
			work.salesRevenue += s.Revenue
			work.unitsSold += s.UnitsSold
		}

		state := work.state.Clone()
		state.Cash += work.salesRevenue
		state.CumulativeRevenue += work.salesRevenue

		moduleNet := 0.0
		for _, r := range work.results {
			moduleNet += r.Net()
		}
		state.NetIncome = work.salesRevenue + moduleNet
		work.state = state
	}
}

func (p *Processor) standings(resolved []*teamWork) []market.TeamStanding {
	totalUnits := 0
	for _, work := range resolved {
		totalUnits += work.unitsSold
	}
	standings := make([]market.TeamStanding, 0, len(resolved))
	for _, work := range resolved {
		share := 0.0
		if totalUnits > 0 {
			share = float64(work.unitsSold) / float64(totalUnits)
		}
		standings = append(standings, market.TeamStanding{
			TeamID:      work.id,
			NetIncome:   work.state.NetIncome,
			EPS:         work.state.EPS(),
			MarketShare: share,
		})
	}
	return standings
}

func (p *Processor) finishTeam(work *teamWork, input Input, rankings market.Rankings, all []*teamWork) TeamRoundResult {
	totalUnits := 0
	for _, other := range all {
		totalUnits += other.unitsSold
	}
	metrics, flags := p.teamMetrics(work, rankings, input.RoundNumber, totalUnits)

	progress := work.progress.Clone()
	awards := p.achievements.Evaluate(progress, metrics, flags, input.RoundNumber)

	moduleCosts, moduleRevenue := 0.0, 0.0
	for _, r := range work.results {
		moduleCosts += r.Costs
		moduleRevenue += r.Revenue
	}

	return TeamRoundResult{
		TeamID:        work.id,
		Round:         input.RoundNumber,
		State:         work.state,
		ModuleResults: work.results,
		Sales:         work.sales,
		Financial: FinancialSummary{
			ModuleCosts:   moduleCosts,
			ModuleRevenue: moduleRevenue,
			SalesRevenue:  work.salesRevenue,
			NetIncome:     work.state.NetIncome,
			EPS:           work.state.EPS(),
			ClosingCash:   work.state.Cash,
		},
		CompetitorActions: competitorDigest(work.id, all),
		OverallRank:       rankings.Overall[work.id],
		EPSRank:           rankings.EPS[work.id],
		MarketShareRank:   rankings.MarketShare[work.id],
		NewAwards:         awards,
		Progress:          progress,
	}
}

// teamMetrics distills a team's round into the flat metric map the
// achievement engine evaluates.
func (p *Processor) teamMetrics(work *teamWork, rankings market.Rankings, roundNumber, totalUnits int) (achievements.Metrics, achievements.Flags) {
	state := work.state

	bestQuality := 0.0
	for _, product := range state.Products {
		if product.Launched && product.Quality > bestQuality {
			bestQuality = product.Quality
		}
	}

	dividendPaid := 0.0
	for _, record := range state.Dividends {
		if record.Round == roundNumber {
			dividendPaid = 1
		}
	}

	marketShare := 0.0
	if totalUnits > 0 {
		marketShare = float64(work.unitsSold) / float64(totalUnits)
	}

	metrics := achievements.Metrics{
		"cash":          state.Cash,
		"netIncome":     state.NetIncome,
		"eps":           state.EPS(),
		"totalDebt":     state.TotalDebt(),
		"patents":       float64(state.Patents),
		"techLevel":     state.TechLevel,
		"esg":           state.ESGScore,
		"bestQuality":   bestQuality,
		"unitsSold":     float64(work.unitsSold),
		"marketShare":   marketShare,
		"overallRank":   float64(rankings.Overall[work.id]),
		"dividendPaid":  dividendPaid,
		"lateShipments": float64(work.lateOrders),
	}

	flags := achievements.Flags{
		"usedRouteComparison": usedComparison(work.decisions),
		"recoveredFromLoss":   work.prev.NetIncome < 0 && state.NetIncome > 1_000_000,
	}
	return metrics, flags
}

func usedComparison(d *modules.Decisions) bool {
	if d == nil {
		return false
	}
	for _, order := range d.Factory.MaterialOrders {
		if order.UsedComparison {
			return true
		}
	}
	return false
}

// competitorDigest summarizes rivals' visible moves. Failures and internals
// stay private to their own team.
func competitorDigest(selfID string, all []*teamWork) []CompetitorAction {
	var actions []CompetitorAction
	for _, other := range all {
		if other.id == selfID {
			continue
		}
		var notes []string
		if other.unitsSold > 0 {
			notes = append(notes, fmt.Sprintf("sold %d units", other.unitsSold))
		}
		for _, product := range other.state.Products {
			if product.Launched {
				notes = append(notes, fmt.Sprintf("selling in %s at $%.0f", product.SegmentID, product.Price))
			}
		}
		if len(notes) == 0 {
			notes = append(notes, "no visible market activity")
		}
		actions = append(actions, CompetitorAction{
			TeamID:  other.id,
			Summary: strings.Join(notes, "; "),
		})
	}
	return actions
}

func applyTeamEffects(state *company.TeamState, effects []events.Effect) {
	for _, effect := range effects {
		switch {
		case effect.Field == "cash":
			state.Cash = combineEffect(state.Cash, effect)
		case effect.Field == "esg":
			state.ESGScore = shared.Clamp(combineEffect(state.ESGScore, effect), 0, 100)
		case effect.Field == "morale":
			state.Workforce.Morale = shared.Clamp(combineEffect(state.Workforce.Morale, effect), 0, 100)
		case strings.HasPrefix(effect.Field, "brand:"):
			segmentID := strings.TrimPrefix(effect.Field, "brand:")
			for id := range state.BrandValue {
				if segmentID == "*" || segmentID == id {
					state.BrandValue[id] = shared.Clamp(combineEffect(state.BrandValue[id], effect), 0, 100)
				}
			}
		}
	}
}

func combineEffect(current float64, effect events.Effect) float64 {
	if effect.Op == events.OpMultiply {
		return current * effect.Value
	}
	return current + effect.Value
}

func progressOrEmpty(p *achievements.Progress, teamID string) *achievements.Progress {
	if p == nil {
		return achievements.NewProgress(teamID)
	}
	return p
}

func eventStateOrEmpty(s *events.State) *events.State {
	if s == nil {
		return events.NewState()
	}
	return s.Clone()
}
