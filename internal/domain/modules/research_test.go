package modules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarterdesk/phonesim-go/internal/domain/modules"
)

func TestRnD_BudgetRaisesTechLevel(t *testing.T) {
	// Arrange
	state := standardTeam(t, "team-1")
	module := &modules.RnDModule{}
	d := baselineDecisions()
	d.RnD = modules.RnDDecisions{Budget: 4_000_000}

	// Act
	result, err := module.Resolve(state, d, testEnv(1))

	// Assert
	require.NoError(t, err)
	assert.Greater(t, state.TechLevel, 1.0)
	assert.Equal(t, 4_000_000.0, result.Costs)
}

func TestRnD_UpgradeImprovesProduct(t *testing.T) {
	// Arrange
	state := standardTeam(t, "team-1")
	productID := state.Products[0].ID
	qualityBefore := state.Products[0].Quality
	module := &modules.RnDModule{}
	d := baselineDecisions()
	d.RnD = modules.RnDDecisions{
		Upgrades: []modules.ProductUpgrade{
			{ProductID: productID, QualityBudget: 1_000_000, FeatureBudget: 500_000},
		},
	}

	// Act
	result, err := module.Resolve(state, d, testEnv(1))

	// Assert
	require.NoError(t, err)
	assert.Greater(t, state.Products[0].Quality, qualityBefore)
	assert.Equal(t, 1_500_000.0, result.Costs)
}

func TestRnD_LaunchCreatesProductInNewSegment(t *testing.T) {
	// Arrange
	state := standardTeam(t, "team-1")
	module := &modules.RnDModule{}
	d := baselineDecisions()
	d.RnD = modules.RnDDecisions{
		NewProducts: []modules.NewProduct{
			{Name: "Aster One", SegmentID: "general", Price: 420},
		},
	}

	// Act
	result, err := module.Resolve(state, d, testEnv(1))

	// Assert: launched at tech-derived quality, brand starts from scratch
	require.NoError(t, err)
	product := state.ProductInSegment("general")
	require.NotNil(t, product)
	assert.Equal(t, "Aster One", product.Name)
	assert.InDelta(t, 42, product.Quality, 1e-9)
	assert.Equal(t, 15.0, state.BrandValue["general"])
	assert.Equal(t, 2_000_000.0, result.Costs)
}

func TestRnD_LaunchIntoOccupiedSegmentIsSkipped(t *testing.T) {
	// Arrange: budget already has a launched product
	state := standardTeam(t, "team-1")
	module := &modules.RnDModule{}
	d := baselineDecisions()
	d.RnD = modules.RnDDecisions{
		NewProducts: []modules.NewProduct{
			{Name: "Duplicate", SegmentID: "budget", Price: 150},
		},
	}

	// Act
	result, err := module.Resolve(state, d, testEnv(1))

	// Assert
	require.NoError(t, err)
	assert.Len(t, state.Products, 1)
	assertAnyMessageContains(t, result.Messages, "already selling")
	assert.Zero(t, result.Costs)
}

func TestRnD_PatentGrantIsSeedDeterministic(t *testing.T) {
	// Arrange
	run := func() int {
		state := standardTeam(t, "team-1")
		module := &modules.RnDModule{}
		d := baselineDecisions()
		d.RnD = modules.RnDDecisions{Budget: 5_000_000}
		_, err := module.Resolve(state, d, testEnv(13))
		require.NoError(t, err)
		return state.Patents
	}

	// Act & Assert
	assert.Equal(t, run(), run())
}
