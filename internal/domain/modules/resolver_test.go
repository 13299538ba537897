package modules_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarterdesk/phonesim-go/internal/domain/company"
	"github.com/quarterdesk/phonesim-go/internal/domain/logistics"
	"github.com/quarterdesk/phonesim-go/internal/domain/market"
	"github.com/quarterdesk/phonesim-go/internal/domain/modules"
	"github.com/quarterdesk/phonesim-go/internal/domain/shared"
)

func standardTeam(t *testing.T, teamID string) *company.TeamState {
	preset, err := company.PresetByName("standard")
	require.NoError(t, err)
	return company.NewTeamState(teamID, preset)
}

func testEnv(seed int64) *modules.Env {
	return &modules.Env{
		Round:  1,
		Ctx:    shared.NewEngineContext(seed),
		Market: market.DefaultMarketState(),
		Routes: logistics.DefaultCatalog(),
	}
}

func baselineDecisions() *modules.Decisions {
	return &modules.Decisions{
		HR:        modules.HRDecisions{SalaryMultiplier: 1.0},
		Marketing: modules.MarketingDecisions{},
	}
}

// stubModule lets the isolation tests script arbitrary resolver behavior.
type stubModule struct {
	resolve func(state *company.TeamState, d *modules.Decisions, env *modules.Env) (*shared.ModuleResult, error)
}

func (s *stubModule) Name() shared.ModuleName { return shared.ModuleFactory }

func (s *stubModule) Resolve(state *company.TeamState, d *modules.Decisions, env *modules.Env) (*shared.ModuleResult, error) {
	return s.resolve(state, d, env)
}

func TestResolve_NilDecisionsFailsWithoutMutation(t *testing.T) {
	// Arrange
	state := standardTeam(t, "team-1")
	module := &modules.FactoryModule{}

	// Act
	next, result := modules.Resolve(module, state, nil, testEnv(1))

	// Assert
	assert.Same(t, state, next)
	assert.False(t, result.Success)
	assert.Contains(t, result.Messages[0], shared.ErrNilDecisions.Error())
}

func TestResolve_PanicIsIsolated(t *testing.T) {
	// Arrange
	state := standardTeam(t, "team-1")
	module := &stubModule{resolve: func(*company.TeamState, *modules.Decisions, *modules.Env) (*shared.ModuleResult, error) {
		panic("resolver bug")
	}}

	// Act
	next, result := modules.Resolve(module, state, baselineDecisions(), testEnv(1))

	// Assert: original state survives, failure is reported, nothing escapes
	assert.Same(t, state, next)
	assert.Equal(t, 15_000_000.0, next.Cash)
	require.False(t, result.Success)
	assert.Contains(t, result.Messages[0], "resolver bug")
}

func TestResolve_ErrorFailsModule(t *testing.T) {
	state := standardTeam(t, "team-1")
	module := &stubModule{resolve: func(*company.TeamState, *modules.Decisions, *modules.Env) (*shared.ModuleResult, error) {
		return nil, errors.New("bad input")
	}}

	next, result := modules.Resolve(module, state, baselineDecisions(), testEnv(1))

	assert.Same(t, state, next)
	assert.False(t, result.Success)
}

func TestResolve_NegativeCostIsRejected(t *testing.T) {
	// Arrange
	state := standardTeam(t, "team-1")
	module := &stubModule{resolve: func(working *company.TeamState, _ *modules.Decisions, _ *modules.Env) (*shared.ModuleResult, error) {
		r := shared.NewModuleResult(shared.ModuleFactory)
		r.Costs = -500 // would mint money
		return r, nil
	}}

	// Act
	next, result := modules.Resolve(module, state, baselineDecisions(), testEnv(1))

	// Assert
	assert.Same(t, state, next)
	assert.False(t, result.Success)
	assert.Contains(t, result.Messages[0], "negative cost")
}

func TestResolve_NonFiniteStateIsRolledBack(t *testing.T) {
	// Arrange: the module corrupts its working state but reports clean numbers
	state := standardTeam(t, "team-1")
	module := &stubModule{resolve: func(working *company.TeamState, _ *modules.Decisions, _ *modules.Env) (*shared.ModuleResult, error) {
		working.TechLevel = math.NaN()
		return shared.NewModuleResult(shared.ModuleFactory), nil
	}}

	// Act
	next, result := modules.Resolve(module, state, baselineDecisions(), testEnv(1))

	// Assert
	assert.Same(t, state, next)
	assert.Equal(t, 1.0, next.TechLevel)
	assert.False(t, result.Success)
}

func TestResolve_AppliesNetCashUniformly(t *testing.T) {
	// Arrange
	state := standardTeam(t, "team-1")
	module := &stubModule{resolve: func(working *company.TeamState, _ *modules.Decisions, _ *modules.Env) (*shared.ModuleResult, error) {
		r := shared.NewModuleResult(shared.ModuleFactory)
		r.Costs = 100_000
		r.Revenue = 250_000
		return r, nil
	}}

	// Act
	next, result := modules.Resolve(module, state, baselineDecisions(), testEnv(1))

	// Assert: cash moves by the net, cumulative totals by gross
	require.True(t, result.Success)
	assert.NotSame(t, state, next)
	assert.Equal(t, 15_150_000.0, next.Cash)
	assert.Equal(t, 100_000.0, next.CumulativeCosts)
	assert.Equal(t, 250_000.0, next.CumulativeRevenue)
	assert.Equal(t, 15_000_000.0, state.Cash, "input state must not be mutated")
}

func TestAll_FixedModuleOrder(t *testing.T) {
	all := modules.All()

	require.Len(t, all, len(shared.ModuleOrder))
	for i, m := range all {
		assert.Equal(t, shared.ModuleOrder[i], m.Name())
	}
}
