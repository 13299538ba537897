package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/quarterdesk/phonesim-go/internal/application/round"
	"github.com/quarterdesk/phonesim-go/internal/domain/events"
	"github.com/quarterdesk/phonesim-go/test/helpers"
)

type simulationContext struct {
	seed      int64
	teamCount int

	output       *round.Output
	replayOutput *round.Output
	otherOutput  *round.Output

	calmUnits    int
	shockedUnits int

	err error
}

func (sc *simulationContext) reset() {
	sc.seed = 0
	sc.teamCount = 0
	sc.output = nil
	sc.replayOutput = nil
	sc.otherOutput = nil
	sc.calmUnits = 0
	sc.shockedUnits = 0
	sc.err = nil
}

// Setup steps

func (sc *simulationContext) aGameSeededWithAndTeams(seed, teams int) error {
	if teams < 1 {
		return fmt.Errorf("need at least one team, got %d", teams)
	}
	sc.seed = int64(seed)
	sc.teamCount = teams
	return nil
}

// Action steps

func (sc *simulationContext) iResolveRound(roundNumber int) error {
	processor := round.NewProcessor()
	sc.output, sc.err = processor.Process(helpers.SeededInput(sc.seed, roundNumber, sc.teamCount))
	return sc.err
}

func (sc *simulationContext) iResolveRoundTwiceFromTheSameInput(roundNumber int) error {
	processor := round.NewProcessor()

	first, err := processor.Process(helpers.SeededInput(sc.seed, roundNumber, sc.teamCount))
	if err != nil {
		return err
	}
	second, err := processor.Process(helpers.SeededInput(sc.seed, roundNumber, sc.teamCount))
	if err != nil {
		return err
	}

	sc.output = first
	sc.replayOutput = second
	return nil
}

func (sc *simulationContext) iResolveRoundWithSeedsAnd(roundNumber, seedA, seedB int) error {
	processor := round.NewProcessor()

	first, err := processor.Process(helpers.SeededInput(int64(seedA), roundNumber, sc.teamCount))
	if err != nil {
		return err
	}
	second, err := processor.Process(helpers.SeededInput(int64(seedB), roundNumber, sc.teamCount))
	if err != nil {
		return err
	}

	sc.output = first
	sc.otherOutput = second
	return nil
}

// playTwoRounds resolves two consecutive rounds, carrying market, event, and
// team state forward, and returns total units sold in the second round.
func (sc *simulationContext) playTwoRounds(inject *events.CustomEvent) (int, error) {
	processor := round.NewProcessor()

	input := helpers.SeededInput(sc.seed, 1, sc.teamCount)
	if inject != nil {
		input.InjectedEvents = []events.CustomEvent{*inject}
	}
	first, err := processor.Process(input)
	if err != nil {
		return 0, err
	}

	next := helpers.SeededInput(sc.seed, 2, sc.teamCount)
	next.MarketState = first.MarketState
	next.EventState = first.EventState
	for i := range next.Teams {
		next.Teams[i].State = first.Results[i].State
		next.Teams[i].Progress = first.Results[i].Progress
	}
	second, err := processor.Process(next)
	if err != nil {
		return 0, err
	}

	return countUnits(second), nil
}

func (sc *simulationContext) iPlayAFullRoundGame(rounds int) error {
	processor := round.NewProcessor()

	input := helpers.SeededInput(sc.seed, 1, sc.teamCount)
	marketState := input.MarketState
	eventState := input.EventState

	for roundNumber := 1; roundNumber <= rounds; roundNumber++ {
		input.RoundNumber = roundNumber
		input.MarketState = marketState
		input.EventState = eventState

		output, err := processor.Process(input)
		if err != nil {
			return fmt.Errorf("round %d: %w", roundNumber, err)
		}

		marketState = output.MarketState
		eventState = output.EventState
		for i := range input.Teams {
			input.Teams[i].State = output.Results[i].State
			input.Teams[i].Progress = output.Results[i].Progress
		}
		sc.output = output
	}
	return nil
}

func (sc *simulationContext) iPlayTwoRoundsWithAndWithoutAnInjectedRecession() error {
	recession := events.CustomEvent{
		Title:          "Recession",
		DurationRounds: 3,
		Effects: []events.Effect{
			{Field: "gdp", Op: events.OpAdd, Value: -2},
			{Field: "consumerConfidence", Op: events.OpAdd, Value: -15},
			{Field: "demand:*", Op: events.OpMultiply, Value: 0.85},
		},
	}

	calm, err := sc.playTwoRounds(nil)
	if err != nil {
		return err
	}
	shocked, err := sc.playTwoRounds(&recession)
	if err != nil {
		return err
	}

	sc.calmUnits = calm
	sc.shockedUnits = shocked
	return nil
}

// Assertion steps

func (sc *simulationContext) bothOutputsAreIdentical() error {
	if sc.output == nil || sc.replayOutput == nil {
		return fmt.Errorf("no replay outputs recorded")
	}
	if len(sc.output.Results) != len(sc.replayOutput.Results) {
		return fmt.Errorf("result counts differ: %d vs %d",
			len(sc.output.Results), len(sc.replayOutput.Results))
	}
	for i, result := range sc.output.Results {
		replay := sc.replayOutput.Results[i]
		if result.Financial != replay.Financial {
			return fmt.Errorf("team %s financials differ between runs: %+v vs %+v",
				result.TeamID, result.Financial, replay.Financial)
		}
		if result.State.Cash != replay.State.Cash {
			return fmt.Errorf("team %s closing cash differs between runs: %f vs %f",
				result.TeamID, result.State.Cash, replay.State.Cash)
		}
		if result.OverallRank != replay.OverallRank {
			return fmt.Errorf("team %s overall rank differs between runs: %d vs %d",
				result.TeamID, result.OverallRank, replay.OverallRank)
		}
	}
	return nil
}

func (sc *simulationContext) theOutputsDiffer() error {
	if sc.output == nil || sc.otherOutput == nil {
		return fmt.Errorf("no comparison outputs recorded")
	}
	for i, result := range sc.output.Results {
		if result.Financial != sc.otherOutput.Results[i].Financial {
			return nil
		}
	}
	return fmt.Errorf("outputs are identical across different seeds")
}

func (sc *simulationContext) totalUnitsSoldAreLowerUnderTheRecession() error {
	if sc.shockedUnits >= sc.calmUnits {
		return fmt.Errorf("expected recession to suppress demand: calm %d units, shocked %d units",
			sc.calmUnits, sc.shockedUnits)
	}
	return nil
}

func (sc *simulationContext) theOverallStandingsAreRanksThroughWithNoTies(first, last int) error {
	if sc.output == nil {
		return fmt.Errorf("no round output recorded")
	}
	seen := make(map[int]string, len(sc.output.Rankings.Overall))
	for teamID, rank := range sc.output.Rankings.Overall {
		if rank < first || rank > last {
			return fmt.Errorf("team %s has rank %d outside [%d, %d]", teamID, rank, first, last)
		}
		if other, dup := seen[rank]; dup {
			return fmt.Errorf("teams %s and %s share rank %d", other, teamID, rank)
		}
		seen[rank] = teamID
	}
	if len(seen) != last-first+1 {
		return fmt.Errorf("expected %d distinct ranks, got %d", last-first+1, len(seen))
	}
	return nil
}

func (sc *simulationContext) cumulativeRevenuesStayWithinAXSpread(factor int) error {
	if sc.output == nil {
		return fmt.Errorf("no round output recorded")
	}
	lowest, highest := -1.0, 0.0
	for _, result := range sc.output.Results {
		revenue := result.State.CumulativeRevenue
		if revenue <= 0 {
			return fmt.Errorf("team %s finished with no revenue", result.TeamID)
		}
		if lowest < 0 || revenue < lowest {
			lowest = revenue
		}
		if revenue > highest {
			highest = revenue
		}
	}
	if highest > lowest*float64(factor) {
		return fmt.Errorf("revenue spread %.2fx exceeds %dx", highest/lowest, factor)
	}
	return nil
}

func (sc *simulationContext) everyTeamStaysSolvent() error {
	if sc.output == nil {
		return fmt.Errorf("no round output recorded")
	}
	for _, result := range sc.output.Results {
		if err := result.State.Validate(); err != nil {
			return fmt.Errorf("team %s finished in an invalid state: %w", result.TeamID, err)
		}
	}
	return nil
}

func (sc *simulationContext) everyTeamHasAResult() error {
	if sc.output == nil {
		return fmt.Errorf("no round output recorded")
	}
	if len(sc.output.Results) != sc.teamCount {
		return fmt.Errorf("expected %d results, got %d", sc.teamCount, len(sc.output.Results))
	}
	return nil
}

func countUnits(out *round.Output) int {
	total := 0
	for _, result := range out.Results {
		for _, sale := range result.Sales {
			total += sale.UnitsSold
		}
	}
	return total
}

// InitializeSimulationScenario registers round resolution steps with godog
func InitializeSimulationScenario(ctx *godog.ScenarioContext) {
	sc := &simulationContext{}

	ctx.Before(func(ctx context.Context, scenario *godog.Scenario) (context.Context, error) {
		sc.reset()
		return ctx, nil
	})

	// Setup steps
	ctx.Step(`^a game seeded with (\d+) and (\d+) teams$`, sc.aGameSeededWithAndTeams)

	// Action steps
	ctx.Step(`^I resolve round (\d+)$`, sc.iResolveRound)
	ctx.Step(`^I resolve round (\d+) twice from the same input$`, sc.iResolveRoundTwiceFromTheSameInput)
	ctx.Step(`^I resolve round (\d+) with seeds (\d+) and (\d+)$`, sc.iResolveRoundWithSeedsAnd)
	ctx.Step(`^I play a full (\d+) round game$`, sc.iPlayAFullRoundGame)
	ctx.Step(`^I play two rounds with and without an injected recession$`,
		sc.iPlayTwoRoundsWithAndWithoutAnInjectedRecession)

	// Assertion steps
	ctx.Step(`^both outputs are identical$`, sc.bothOutputsAreIdentical)
	ctx.Step(`^the outputs differ$`, sc.theOutputsDiffer)
	ctx.Step(`^total units sold are lower under the recession$`,
		sc.totalUnitsSoldAreLowerUnderTheRecession)
	ctx.Step(`^the overall standings are ranks (\d+) through (\d+) with no ties$`,
		sc.theOverallStandingsAreRanksThroughWithNoTies)
	ctx.Step(`^every team has a result$`, sc.everyTeamHasAResult)
	ctx.Step(`^cumulative revenues stay within a (\d+)x spread$`,
		sc.cumulativeRevenuesStayWithinAXSpread)
	ctx.Step(`^every team finishes in a valid state$`, sc.everyTeamStaysSolvent)
}
