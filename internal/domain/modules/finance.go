package modules

import (
	"fmt"
	"math"

	"github.com/quarterdesk/phonesim-go/internal/domain/company"
	"github.com/quarterdesk/phonesim-go/internal/domain/shared"
)

// Board approval is required for debt issuances above this size; approval is
// a draw from the engine context.
const boardApprovalThreshold = 5_000_000

const debtSpread = 1.5 // points over the market rate
const debtTermRounds = 8

// FinanceModule resolves debt, interest, dividends, and buybacks. Runs last
// so it sees the round's final pre-sales cash position.
type FinanceModule struct{}

func (m *FinanceModule) Name() shared.ModuleName { return shared.ModuleFinance }

func (m *FinanceModule) Resolve(state *company.TeamState, d *Decisions, env *Env) (*shared.ModuleResult, error) {
	fd := d.Finance
	if err := validate.Struct(fd); err != nil {
		return nil, fmt.Errorf("finance decisions: %w", err)
	}

	result := shared.NewModuleResult(shared.ModuleFinance)

	m.serviceDebt(state, result)
	m.issueDebt(state, fd, env, result)
	m.repayDebt(state, fd, result)
	m.payDividend(state, fd, env, result)
	m.buyBack(state, fd, result)

	return result, nil
}

// serviceDebt charges quarterly interest and retires instruments whose term
// has run out, paying back principal.
func (m *FinanceModule) serviceDebt(state *company.TeamState, result *shared.ModuleResult) {
	kept := state.Debt[:0]
	for _, debt := range state.Debt {
		interest := debt.Principal * debt.AnnualRate / 100 / 4
		result.Costs += interest
		result.Record("interest", interest)

		debt.RoundsRemaining--
		if debt.RoundsRemaining <= 0 {
			result.Costs += debt.Principal
			result.AddMessage(fmt.Sprintf("loan of $%.0f matured and was repaid", debt.Principal))
			continue
		}
		kept = append(kept, debt)
	}
	state.Debt = kept
}

func (m *FinanceModule) issueDebt(state *company.TeamState, fd FinanceDecisions, env *Env, result *shared.ModuleResult) {
	if fd.NewDebt <= 0 {
		return
	}
	if fd.NewDebt > boardApprovalThreshold && !env.Ctx.Chance(0.8) {
		result.AddMessage(fmt.Sprintf("board rejected the $%.0f debt issuance", fd.NewDebt))
		return
	}
	rate := env.Market.Macro.InterestRate + debtSpread
	state.Debt = append(state.Debt, company.DebtInstrument{
		Principal:       fd.NewDebt,
		AnnualRate:      rate,
		RoundsRemaining: debtTermRounds,
	})
	result.Revenue += fd.NewDebt
	result.AddMessage(fmt.Sprintf("issued $%.0f of debt at %.1f%%", fd.NewDebt, rate))
}

func (m *FinanceModule) repayDebt(state *company.TeamState, fd FinanceDecisions, result *shared.ModuleResult) {
	remaining := fd.RepayDebt
	if remaining <= 0 {
		return
	}
	kept := state.Debt[:0]
	for _, debt := range state.Debt {
		if remaining <= 0 {
			kept = append(kept, debt)
			continue
		}
		pay := math.Min(remaining, debt.Principal)
		debt.Principal -= pay
		remaining -= pay
		result.Costs += pay
		result.Record("repaid", pay)
		if debt.Principal > 0 {
			kept = append(kept, debt)
		}
	}
	state.Debt = kept
}

func (m *FinanceModule) payDividend(state *company.TeamState, fd FinanceDecisions, env *Env, result *shared.ModuleResult) {
	if fd.DividendPerShare <= 0 || state.SharesOutstanding <= 0 {
		return
	}
	perShare := fd.DividendPerShare
	total := perShare * state.SharesOutstanding
	if total > state.Cash {
		// Scale the payout down to what the company can actually pay
		perShare = math.Max(0, state.Cash) / state.SharesOutstanding
		total = perShare * state.SharesOutstanding
		result.AddMessage(fmt.Sprintf("dividend reduced to $%.4f/share: insufficient cash", perShare))
	}
	if total <= 0 {
		return
	}
	result.Costs += total
	state.Dividends = append(state.Dividends, company.DividendRecord{
		Round:     env.Round,
		PerShare:  perShare,
		TotalPaid: total,
	})
	result.Record("dividend", total)
}

// buyBack retires shares at an implied price derived from recent earnings.
func (m *FinanceModule) buyBack(state *company.TeamState, fd FinanceDecisions, result *shared.ModuleResult) {
	if fd.BuybackBudget <= 0 || state.SharesOutstanding <= 0 {
		return
	}
	price := math.Max(5, 20*math.Max(state.EPS(), 0.05))
	shares := fd.BuybackBudget / price
	if shares >= state.SharesOutstanding {
		shares = state.SharesOutstanding * 0.1 // can't buy the whole float in a quarter
		result.AddMessage("buyback capped at 10% of shares outstanding")
	}
	state.SharesOutstanding -= shares
	result.Costs += shares * price
	result.Record("buyback", shares)
}
