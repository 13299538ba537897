package modules

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/quarterdesk/phonesim-go/internal/domain/company"
	"github.com/quarterdesk/phonesim-go/internal/domain/logistics"
	"github.com/quarterdesk/phonesim-go/internal/domain/market"
	"github.com/quarterdesk/phonesim-go/internal/domain/shared"
)

var validate = validator.New()

// Env is everything a resolver may read besides the team's own state. The
// market state is shared and read-only during team resolution; routes are a
// static catalog; the engine context is the round's only randomness source.
type Env struct {
	Round  int
	Ctx    *shared.EngineContext
	Market *market.MarketState
	Routes *logistics.Catalog
}

// Module is one of the five decision-domain resolvers. Resolve mutates the
// working state it is handed (always a private clone) and reports costs,
// revenue, and messages; it may return an error but must not let one escape
// any other way.
type Module interface {
	Name() shared.ModuleName
	Resolve(state *company.TeamState, d *Decisions, env *Env) (*shared.ModuleResult, error)
}

// Resolve runs one module inside the failure-isolation boundary. Any panic,
// error, negative cost/revenue, or non-finite output converts to a failed
// ModuleResult with the original state returned untouched: a single module's
// bug never corrupts a team's state or aborts the round for other teams.
func Resolve(m Module, state *company.TeamState, d *Decisions, env *Env) (next *company.TeamState, result *shared.ModuleResult) {
	defer func() {
		if r := recover(); r != nil {
			next = state
			result = shared.FailedModuleResult(m.Name(), fmt.Sprintf("%s module failed: %v", m.Name(), r))
		}
	}()

	if d == nil {
		return state, shared.FailedModuleResult(m.Name(), shared.ErrNilDecisions.Error())
	}

	working := state.Clone()

	result, err := m.Resolve(working, d, env)
	if err != nil {
		return state, shared.FailedModuleResult(m.Name(), err.Error())
	}
	if result == nil {
		return state, shared.FailedModuleResult(m.Name(), "module produced no result")
	}
	if result.Costs < 0 || result.Revenue < 0 {
		return state, shared.FailedModuleResult(m.Name(),
			fmt.Sprintf("negative cost or revenue (costs=%.2f revenue=%.2f)", result.Costs, result.Revenue))
	}
	if !shared.AllFinite(result.Costs, result.Revenue) {
		return state, shared.FailedModuleResult(m.Name(), shared.ErrNonFiniteState.Error())
	}

	// Net effect on cash is applied here, uniformly for every module
	working.Cash += result.Net()
	working.CumulativeCosts += result.Costs
	working.CumulativeRevenue += result.Revenue

	if err := working.Validate(); err != nil {
		return state, shared.FailedModuleResult(m.Name(), err.Error())
	}
	return working, result
}

// All returns the five resolvers in the fixed application order: Factory,
// HR, R&D, Marketing, Finance.
func All() []Module {
	return []Module{
		&FactoryModule{},
		&HRModule{},
		&RnDModule{},
		&MarketingModule{},
		&FinanceModule{},
	}
}
