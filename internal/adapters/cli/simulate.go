package cli

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/quarterdesk/phonesim-go/internal/adapters/persistence"
	"github.com/quarterdesk/phonesim-go/internal/application/common"
	"github.com/quarterdesk/phonesim-go/internal/application/round"
	"github.com/quarterdesk/phonesim-go/internal/application/round/commands"
	"github.com/quarterdesk/phonesim-go/internal/domain/achievements"
	"github.com/quarterdesk/phonesim-go/internal/domain/company"
	"github.com/quarterdesk/phonesim-go/internal/domain/events"
	"github.com/quarterdesk/phonesim-go/internal/domain/logistics"
	"github.com/quarterdesk/phonesim-go/internal/domain/market"
	"github.com/quarterdesk/phonesim-go/internal/domain/modules"
	"github.com/quarterdesk/phonesim-go/internal/infrastructure/config"
	"github.com/quarterdesk/phonesim-go/internal/infrastructure/database"
)

func newSimulateCommand() *cobra.Command {
	var (
		teamCount int
		rounds    int
		seed      int64
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a scripted multi-round game and print the final standings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if seed == 0 {
				seed = cfg.Game.Seed
			}
			if seed == 0 {
				seed = 42
			}
			if rounds == 0 {
				rounds = cfg.Game.Rounds
			}
			return runSimulation(cmd.Context(), cfg, teamCount, rounds, seed)
		},
	}

	cmd.Flags().IntVar(&teamCount, "teams", 4, "Number of teams")
	cmd.Flags().IntVar(&rounds, "rounds", 0, "Rounds to simulate (default from config)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Game seed (default from config)")
	return cmd
}

func runSimulation(ctx context.Context, cfg *config.Config, teamCount, rounds int, seed int64) error {
	slog.SetDefault(cfg.Logging.NewLogger())

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return err
	}
	defer database.Close(db)
	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	gameRepo := persistence.NewGormGameRepository(db)
	stateRepo := persistence.NewGormTeamStateRepository(db)
	resultRepo := persistence.NewGormRoundResultRepository(db)
	progressRepo := persistence.NewGormProgressRepository(db)

	preset, err := company.PresetByName(cfg.Game.Preset)
	if err != nil {
		return err
	}

	gameID := uuid.NewString()
	marketState := market.DefaultMarketState()
	eventState := events.NewState()

	type teamSlot struct {
		id       string
		state    *company.TeamState
		progress *achievements.Progress
	}
	teams := make([]teamSlot, 0, teamCount)
	for i := 0; i < teamCount; i++ {
		id := fmt.Sprintf("team-%d", i+1)
		teams = append(teams, teamSlot{
			id:       id,
			state:    company.NewTeamState(id, preset),
			progress: achievements.NewProgress(id),
		})
	}

	processor := round.NewProcessorWith(
		market.NewEngine(weightsFromConfig(&cfg.Engine)),
		events.NewEngine(events.DefaultCatalog()),
		achievements.NewEngine(achievements.DefaultCatalog()),
		logistics.DefaultCatalog(),
	)

	mediator := common.NewMediator()
	if err := common.RegisterHandler[*commands.ProcessRoundCommand](
		mediator, commands.NewProcessRoundHandler(processor)); err != nil {
		return err
	}
	mediator.Use(commands.RoundLoggingMiddleware())

	ctx = common.WithLogger(ctx, &slogGameLogger{enabled: verbose})

	var lastOutput *round.Output
	for r := 1; r <= rounds; r++ {
		input := round.Input{
			GameSeed:    seed,
			RoundNumber: r,
			MarketState: marketState,
			EventState:  eventState,
		}
		for i, team := range teams {
			input.Teams = append(input.Teams, round.TeamInput{
				ID:        team.id,
				State:     team.state,
				Decisions: scriptedDecisions(i, r),
				Progress:  team.progress,
			})
		}

		response, err := mediator.Send(ctx, &commands.ProcessRoundCommand{Input: input})
		if err != nil {
			return err
		}
		output := response.(*round.Output)

		marketState = output.MarketState
		eventState = output.EventState
		for i := range teams {
			result := output.Results[i]
			teams[i].state = result.State
			teams[i].progress = result.Progress
			if err := stateRepo.Save(ctx, gameID, r, result.State); err != nil {
				return err
			}
			if err := progressRepo.SaveProgress(ctx, gameID, result.Progress); err != nil {
				return err
			}
		}
		if err := resultRepo.Append(ctx, gameID, output); err != nil {
			return err
		}
		if err := progressRepo.SaveEventState(ctx, gameID, eventState); err != nil {
			return err
		}
		if err := gameRepo.Save(ctx, &persistence.Game{
			ID: gameID, Preset: preset.Name, Seed: seed,
			CurrentRound: r, MarketState: marketState,
		}); err != nil {
			return err
		}
		lastOutput = output
	}

	printStandings(lastOutput)
	return nil
}

// scriptedDecisions produces plausible, similar-but-not-identical decisions
// per team: the same shape a workshop's teams tend to submit.
func scriptedDecisions(teamIndex, roundNumber int) *modules.Decisions {
	k := float64(teamIndex)
	return &modules.Decisions{
		Factory: modules.FactoryDecisions{
			Production:           map[string]int{"budget": 40_000 + teamIndex*5_000},
			EfficiencyInvestment: 500_000 + k*100_000,
			GreenInvestment:      200_000 + k*150_000,
		},
		HR: modules.HRDecisions{
			HireWorkers:      10 + teamIndex*2,
			TrainingBudget:   200_000,
			SalaryMultiplier: 1.0 + k*0.05,
		},
		RnD: modules.RnDDecisions{
			Budget: 4_000_000 + k*600_000,
		},
		Marketing: modules.MarketingDecisions{
			AdBudgets: map[string]float64{"budget": 5_000_000 + k*1_000_000},
		},
		Finance: modules.FinanceDecisions{
			NewDebt: debtFor(teamIndex, roundNumber),
		},
	}
}

func debtFor(teamIndex, roundNumber int) float64 {
	if roundNumber == 1 && teamIndex%2 == 0 {
		return 3_000_000
	}
	return 0
}

func printStandings(output *round.Output) {
	if output == nil {
		return
	}
	fmt.Printf("\nFinal standings after round %d\n", output.Round)
	fmt.Printf("%-10s %6s %14s %10s %8s %7s\n", "TEAM", "RANK", "NET INCOME", "EPS RANK", "SHARE", "BADGES")

	ordered := make([]round.TeamRoundResult, len(output.Results))
	copy(ordered, output.Results)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].OverallRank < ordered[j].OverallRank })

	for _, result := range ordered {
		fmt.Printf("%-10s %6d %14.0f %10d %8d %7d\n",
			result.TeamID, result.OverallRank, result.Financial.NetIncome,
			result.EPSRank, result.MarketShareRank, len(result.Progress.Awarded))
	}
}

func weightsFromConfig(e *config.EngineConfig) market.Weights {
	return market.Weights{
		Price:        e.PriceWeight,
		Quality:      e.QualityWeight,
		Features:     e.FeaturesWeight,
		Brand:        e.BrandWeight,
		Ad:           e.AdWeight,
		ESG:          e.ESGWeight,
		Gamma:        e.Gamma,
		AdSaturation: e.AdSaturation,
	}
}

// slogGameLogger adapts slog to the round engine's GameLogger interface.
type slogGameLogger struct {
	enabled bool
}

func (l *slogGameLogger) Log(level, message string, metadata map[string]interface{}) {
	if !l.enabled {
		return
	}
	attrs := make([]any, 0, len(metadata)*2)
	for k, v := range metadata {
		attrs = append(attrs, k, v)
	}
	switch level {
	case "error":
		slog.Error(message, attrs...)
	case "warn":
		slog.Warn(message, attrs...)
	default:
		slog.Info(message, attrs...)
	}
}
