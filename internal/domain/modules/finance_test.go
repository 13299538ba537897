package modules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarterdesk/phonesim-go/internal/domain/company"
	"github.com/quarterdesk/phonesim-go/internal/domain/modules"
)

func TestFinance_SmallDebtIssuesWithoutBoard(t *testing.T) {
	// Arrange: below the board threshold no approval draw is made
	state := standardTeam(t, "team-1")
	module := &modules.FinanceModule{}
	d := baselineDecisions()
	d.Finance = modules.FinanceDecisions{NewDebt: 3_000_000}
	env := testEnv(1)

	// Act
	result, err := module.Resolve(state, d, env)

	// Assert: proceeds are revenue, priced at market rate plus spread
	require.NoError(t, err)
	assert.Equal(t, 3_000_000.0, result.Revenue)
	require.Len(t, state.Debt, 1)
	assert.InDelta(t, env.Market.Macro.InterestRate+1.5, state.Debt[0].AnnualRate, 1e-9)
	assert.Equal(t, 8, state.Debt[0].RoundsRemaining)
}

func TestFinance_DebtInterestAndMaturity(t *testing.T) {
	// Arrange: one instrument on its final quarter
	state := standardTeam(t, "team-1")
	state.Debt = []company.DebtInstrument{
		{Principal: 4_000_000, AnnualRate: 5, RoundsRemaining: 1},
	}
	module := &modules.FinanceModule{}

	// Act
	result, err := module.Resolve(state, baselineDecisions(), testEnv(1))

	// Assert: one quarter of interest plus the matured principal
	require.NoError(t, err)
	assert.Empty(t, state.Debt)
	assert.InDelta(t, 4_000_000*0.05/4, result.Changes["interest"], 1e-6)
	assert.InDelta(t, 4_050_000, result.Costs, 1e-6)
	assertAnyMessageContains(t, result.Messages, "matured")
}

func TestFinance_RepayDebtAcrossInstruments(t *testing.T) {
	// Arrange
	state := standardTeam(t, "team-1")
	state.Debt = []company.DebtInstrument{
		{Principal: 1_000_000, AnnualRate: 5, RoundsRemaining: 4},
		{Principal: 2_000_000, AnnualRate: 5, RoundsRemaining: 4},
	}
	module := &modules.FinanceModule{}
	d := baselineDecisions()
	d.Finance = modules.FinanceDecisions{RepayDebt: 1_500_000}

	// Act
	result, err := module.Resolve(state, d, testEnv(1))

	// Assert: first instrument fully retired, second partially
	require.NoError(t, err)
	require.Len(t, state.Debt, 1)
	assert.InDelta(t, 1_500_000, state.Debt[0].Principal, 1e-6)
	assert.Equal(t, 1_500_000.0, result.Changes["repaid"])
}

func TestFinance_DividendScalesDownToCash(t *testing.T) {
	// Arrange: $1/share on 10M shares against only $1M of cash
	state := standardTeam(t, "team-1")
	state.Cash = 1_000_000
	module := &modules.FinanceModule{}
	d := baselineDecisions()
	d.Finance = modules.FinanceDecisions{DividendPerShare: 1}

	// Act
	result, err := module.Resolve(state, d, testEnv(1))

	// Assert
	require.NoError(t, err)
	require.Len(t, state.Dividends, 1)
	assert.InDelta(t, 0.1, state.Dividends[0].PerShare, 1e-9)
	assert.InDelta(t, 1_000_000, result.Changes["dividend"], 1e-6)
	assertAnyMessageContains(t, result.Messages, "dividend reduced")
}

func TestFinance_BuybackCappedAtTenPercent(t *testing.T) {
	// Arrange: a budget large enough to buy the entire float
	state := standardTeam(t, "team-1")
	module := &modules.FinanceModule{}
	d := baselineDecisions()
	d.Finance = modules.FinanceDecisions{BuybackBudget: 1_000_000_000}

	// Act
	result, err := module.Resolve(state, d, testEnv(1))

	// Assert
	require.NoError(t, err)
	assert.InDelta(t, 9_000_000, state.SharesOutstanding, 1e-6)
	assertAnyMessageContains(t, result.Messages, "capped at 10%")
	assert.Positive(t, result.Costs)
}

func TestFinance_LargeDebtIsSeedDeterministic(t *testing.T) {
	// Arrange: above the threshold the board draw decides, so two runs on the
	// same seed must agree
	run := func() int {
		state := standardTeam(t, "team-1")
		module := &modules.FinanceModule{}
		d := baselineDecisions()
		d.Finance = modules.FinanceDecisions{NewDebt: 8_000_000}
		_, err := module.Resolve(state, d, testEnv(7))
		require.NoError(t, err)
		return len(state.Debt)
	}

	// Act & Assert
	assert.Equal(t, run(), run())
}
