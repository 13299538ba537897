package helpers

import (
	"fmt"

	"github.com/quarterdesk/phonesim-go/internal/application/round"
	"github.com/quarterdesk/phonesim-go/internal/domain/company"
	"github.com/quarterdesk/phonesim-go/internal/domain/market"
	"github.com/quarterdesk/phonesim-go/internal/domain/modules"
)

// StandardTeam builds a starting company from the standard difficulty preset.
func StandardTeam(teamID string) *company.TeamState {
	preset, err := company.PresetByName("standard")
	if err != nil {
		panic(err)
	}
	return company.NewTeamState(teamID, preset)
}

// BaselineDecisions returns a valid, economically quiet decision bundle: run
// the plant, pay market-rate salaries, spend a little on ads and research.
func BaselineDecisions() *modules.Decisions {
	return &modules.Decisions{
		Factory: modules.FactoryDecisions{
			Production: map[string]int{"budget": 50_000},
		},
		HR: modules.HRDecisions{
			SalaryMultiplier: 1.0,
		},
		RnD: modules.RnDDecisions{
			Budget: 1_000_000,
		},
		Marketing: modules.MarketingDecisions{
			AdBudgets: map[string]float64{"budget": 1_000_000},
		},
		Finance: modules.FinanceDecisions{},
	}
}

// SeededInput builds a round input with n standard teams submitting baseline
// decisions. Team IDs are team-1..team-n in that order.
func SeededInput(seed int64, roundNumber, n int) round.Input {
	teams := make([]round.TeamInput, 0, n)
	for i := 1; i <= n; i++ {
		id := fmt.Sprintf("team-%d", i)
		teams = append(teams, round.TeamInput{
			ID:        id,
			State:     StandardTeam(id),
			Decisions: BaselineDecisions(),
		})
	}
	return round.Input{
		GameSeed:    seed,
		RoundNumber: roundNumber,
		Teams:       teams,
		MarketState: market.DefaultMarketState(),
	}
}
