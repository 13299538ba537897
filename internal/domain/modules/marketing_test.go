package modules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarterdesk/phonesim-go/internal/domain/modules"
)

func TestMarketing_AdSpendBuildsBrand(t *testing.T) {
	// Arrange
	state := standardTeam(t, "team-1")
	module := &modules.MarketingModule{}
	d := baselineDecisions()
	d.Marketing = modules.MarketingDecisions{
		AdBudgets: map[string]float64{"budget": 2_000_000},
	}

	// Act
	result, err := module.Resolve(state, d, testEnv(1))

	// Assert: $2M at the saturation point yields half the max gain
	require.NoError(t, err)
	assert.InDelta(t, 34.0, state.BrandValue["budget"], 1e-9)
	assert.Equal(t, 2_000_000.0, result.Costs)
	assert.Zero(t, state.ZeroAdStreak["budget"])
}

func TestMarketing_BrandDecaysWithoutSpend(t *testing.T) {
	// Arrange: five quiet quarters compound 2% decay each
	state := standardTeam(t, "team-1")
	state.BrandValue["budget"] = 50
	module := &modules.MarketingModule{}
	d := baselineDecisions()

	// Act
	for i := 0; i < 5; i++ {
		_, err := module.Resolve(state, d, testEnv(1))
		require.NoError(t, err)
	}

	// Assert: 50 * 0.98^5
	assert.InDelta(t, 45.196, state.BrandValue["budget"], 0.001)
	assert.Equal(t, 5, state.ZeroAdStreak["budget"])
}

func TestMarketing_SpendResetsDecayStreak(t *testing.T) {
	// Arrange
	state := standardTeam(t, "team-1")
	state.ZeroAdStreak["budget"] = 4
	module := &modules.MarketingModule{}
	d := baselineDecisions()
	d.Marketing = modules.MarketingDecisions{
		AdBudgets: map[string]float64{"budget": 100_000},
	}

	// Act
	_, err := module.Resolve(state, d, testEnv(1))

	// Assert
	require.NoError(t, err)
	assert.Zero(t, state.ZeroAdStreak["budget"])
}

func TestMarketing_PriceChangeApplies(t *testing.T) {
	// Arrange
	state := standardTeam(t, "team-1")
	productID := state.Products[0].ID
	module := &modules.MarketingModule{}
	d := baselineDecisions()
	d.Marketing = modules.MarketingDecisions{
		PriceChanges: map[string]float64{productID: 199},
	}

	// Act
	_, err := module.Resolve(state, d, testEnv(1))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 199.0, state.Products[0].Price)
}

func TestMarketing_SkipMessagesAreStableAcrossRuns(t *testing.T) {
	// Arrange: several unknown products so message order depends on the
	// iteration order over the price-change map
	module := &modules.MarketingModule{}
	d := baselineDecisions()
	d.Marketing = modules.MarketingDecisions{
		PriceChanges: map[string]float64{
			"ghost-a": 99, "ghost-b": 99, "ghost-c": 99,
			"ghost-d": 99, "ghost-e": 99, "ghost-f": 99,
		},
	}

	// Act
	first, err := module.Resolve(standardTeam(t, "team-1"), d, testEnv(1))
	require.NoError(t, err)

	// Assert: every rerun yields the messages in the same order
	for i := 0; i < 50; i++ {
		repeat, err := module.Resolve(standardTeam(t, "team-1"), d, testEnv(1))
		require.NoError(t, err)
		require.Equal(t, first.Messages, repeat.Messages)
	}
}

func TestMarketing_UnknownProductPriceChangeIsSkipped(t *testing.T) {
	// Arrange
	state := standardTeam(t, "team-1")
	module := &modules.MarketingModule{}
	d := baselineDecisions()
	d.Marketing = modules.MarketingDecisions{
		PriceChanges: map[string]float64{"ghost-product": 99},
	}

	// Act
	result, err := module.Resolve(state, d, testEnv(1))

	// Assert: skipped with a message, not an error
	require.NoError(t, err)
	assert.True(t, result.Success)
	assertAnyMessageContains(t, result.Messages, "price change skipped")
}
