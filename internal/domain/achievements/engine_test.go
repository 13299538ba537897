package achievements_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarterdesk/phonesim-go/internal/domain/achievements"
)

// healthyMetrics is a baseline round that earns nothing: positive sales,
// positive cash, no records broken.
func healthyMetrics() achievements.Metrics {
	return achievements.Metrics{
		"cash":          5_000_000,
		"netIncome":     200_000,
		"eps":           0.02,
		"totalDebt":     3_000_000,
		"patents":       0,
		"techLevel":     1.2,
		"esg":           40,
		"bestQuality":   50,
		"unitsSold":     20_000,
		"marketShare":   0.25,
		"overallRank":   2,
		"dividendPaid":  0,
		"lateShipments": 1,
	}
}

func awardIDs(awards []achievements.Award) []string {
	ids := make([]string, 0, len(awards))
	for _, a := range awards {
		ids = append(ids, a.AchievementID)
	}
	return ids
}

func TestEvaluate_ThresholdAward(t *testing.T) {
	// Arrange
	engine := achievements.NewEngine(achievements.DefaultCatalog())
	progress := achievements.NewProgress("team-1")
	metrics := healthyMetrics()
	metrics["netIncome"] = 1_500_000

	// Act
	awards := engine.Evaluate(progress, metrics, nil, 1)

	// Assert
	assert.Contains(t, awardIDs(awards), "first-million")
	assert.True(t, progress.Has("first-million"))
}

func TestEvaluate_IsIdempotent(t *testing.T) {
	// Arrange
	engine := achievements.NewEngine(achievements.DefaultCatalog())
	progress := achievements.NewProgress("team-1")
	metrics := healthyMetrics()
	metrics["netIncome"] = 1_500_000

	// Act
	first := engine.Evaluate(progress, metrics, nil, 1)
	second := engine.Evaluate(progress, metrics, nil, 2)

	// Assert: re-qualifying never re-awards
	assert.Contains(t, awardIDs(first), "first-million")
	assert.NotContains(t, awardIDs(second), "first-million")
	assert.Equal(t, 1, progress.Awarded["first-million"].Round)
}

func TestEvaluate_AwardsAreMonotonic(t *testing.T) {
	// Arrange
	engine := achievements.NewEngine(achievements.DefaultCatalog())
	progress := achievements.NewProgress("team-1")
	metrics := healthyMetrics()
	metrics["netIncome"] = 1_500_000
	engine.Evaluate(progress, metrics, nil, 1)
	require.True(t, progress.Has("first-million"))

	// Act: a terrible quarter follows
	bad := healthyMetrics()
	bad["netIncome"] = -4_000_000
	engine.Evaluate(progress, bad, nil, 2)

	// Assert: the badge is never revoked
	assert.True(t, progress.Has("first-million"))
}

func TestEvaluate_SustainedRequiresConsecutiveRounds(t *testing.T) {
	// Arrange: cash-machine wants net income over $2M three quarters running
	engine := achievements.NewEngine(achievements.DefaultCatalog())
	progress := achievements.NewProgress("team-1")
	metrics := healthyMetrics()
	metrics["netIncome"] = 2_500_000

	// Act & Assert
	engine.Evaluate(progress, metrics, nil, 1)
	assert.False(t, progress.Has("cash-machine"))
	engine.Evaluate(progress, metrics, nil, 2)
	assert.False(t, progress.Has("cash-machine"))
	awards := engine.Evaluate(progress, metrics, nil, 3)
	assert.Contains(t, awardIDs(awards), "cash-machine")
}

func TestEvaluate_SustainedCounterResetsOnBreak(t *testing.T) {
	// Arrange
	engine := achievements.NewEngine(achievements.DefaultCatalog())
	progress := achievements.NewProgress("team-1")
	good := healthyMetrics()
	good["netIncome"] = 2_500_000

	// Act: two good quarters, a miss, then three more good ones
	engine.Evaluate(progress, good, nil, 1)
	engine.Evaluate(progress, good, nil, 2)
	engine.Evaluate(progress, healthyMetrics(), nil, 3) // streak broken
	engine.Evaluate(progress, good, nil, 4)
	engine.Evaluate(progress, good, nil, 5)
	assert.False(t, progress.Has("cash-machine"))
	engine.Evaluate(progress, good, nil, 6)

	// Assert
	assert.True(t, progress.Has("cash-machine"))
}

func TestEvaluate_AllRequirementsMustHold(t *testing.T) {
	// Arrange: debt-free needs zero debt AND $20M cash
	engine := achievements.NewEngine(achievements.DefaultCatalog())
	progress := achievements.NewProgress("team-1")
	metrics := healthyMetrics()
	metrics["totalDebt"] = 0

	// Act & Assert: cash still short
	engine.Evaluate(progress, metrics, nil, 1)
	assert.False(t, progress.Has("debt-free"))

	metrics["cash"] = 25_000_000
	engine.Evaluate(progress, metrics, nil, 2)
	assert.True(t, progress.Has("debt-free"))
}

func TestEvaluate_CustomFlagAward(t *testing.T) {
	// Arrange
	engine := achievements.NewEngine(achievements.DefaultCatalog())
	progress := achievements.NewProgress("team-1")

	// Act
	engine.Evaluate(progress, healthyMetrics(), nil, 1)
	assert.False(t, progress.Has("route-scholar"))
	awards := engine.Evaluate(progress, healthyMetrics(),
		achievements.Flags{"usedRouteComparison": true}, 2)

	// Assert
	assert.Contains(t, awardIDs(awards), "route-scholar")
}

func TestEvaluate_InfamySubtractsPoints(t *testing.T) {
	// Arrange: two quarters in the red awards cash-crunch at -25
	engine := achievements.NewEngine(achievements.DefaultCatalog())
	progress := achievements.NewProgress("team-1")
	broke := healthyMetrics()
	broke["cash"] = -100_000

	// Act
	engine.Evaluate(progress, broke, nil, 1)
	awards := engine.Evaluate(progress, broke, nil, 2)

	// Assert
	require.Contains(t, awardIDs(awards), "cash-crunch")
	assert.Equal(t, -25, progress.Awarded["cash-crunch"].Points)
	assert.Negative(t, progress.Score())
}

func TestEvaluate_GhostTownOnZeroSales(t *testing.T) {
	// Arrange
	engine := achievements.NewEngine(achievements.DefaultCatalog())
	progress := achievements.NewProgress("team-1")
	metrics := healthyMetrics()
	metrics["unitsSold"] = 0

	// Act
	awards := engine.Evaluate(progress, metrics, nil, 1)

	// Assert
	assert.Contains(t, awardIDs(awards), "ghost-town")
}

func TestTierPoints(t *testing.T) {
	assert.Equal(t, 10, achievements.TierBronze.Points())
	assert.Equal(t, 25, achievements.TierSilver.Points())
	assert.Equal(t, 50, achievements.TierGold.Points())
	assert.Equal(t, 100, achievements.TierPlatinum.Points())
	assert.Equal(t, 75, achievements.TierSecret.Points())
	assert.Equal(t, -25, achievements.TierInfamy.Points())
}

func TestCategoryTotals(t *testing.T) {
	// Arrange
	engine := achievements.NewEngine(achievements.DefaultCatalog())
	progress := achievements.NewProgress("team-1")
	metrics := healthyMetrics()
	metrics["netIncome"] = 1_500_000
	metrics["techLevel"] = 3.5
	engine.Evaluate(progress, metrics, nil, 1)

	// Act
	totals := engine.CategoryTotals(progress)

	// Assert
	assert.Equal(t, 10, totals["finance"])
	assert.Equal(t, 10, totals["rnd"])
}

func TestProgress_CloneIsDeep(t *testing.T) {
	// Arrange
	progress := achievements.NewProgress("team-1")
	progress.Awarded["x"] = achievements.Award{AchievementID: "x", Points: 10}
	progress.Sustained["netIncome|gte|2e+06"] = 2

	// Act
	clone := progress.Clone()
	delete(clone.Awarded, "x")
	clone.Sustained["netIncome|gte|2e+06"] = 0

	// Assert
	assert.True(t, progress.Has("x"))
	assert.Equal(t, 2, progress.Sustained["netIncome|gte|2e+06"])
}
