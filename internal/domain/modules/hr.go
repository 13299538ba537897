package modules

import (
	"fmt"

	"github.com/quarterdesk/phonesim-go/internal/domain/company"
	"github.com/quarterdesk/phonesim-go/internal/domain/shared"
)

// Quarterly pay and recruiting costs per head.
const (
	workerSalary     = 12_000
	engineerSalary   = 25_000
	supervisorSalary = 20_000

	recruitWorkerCost     = 3_000
	recruitEngineerCost   = 8_000
	recruitSupervisorCost = 6_000
	severanceCost         = 5_000
)

// HRModule resolves hiring, pay, training, morale, and attrition.
type HRModule struct{}

func (m *HRModule) Name() shared.ModuleName { return shared.ModuleHR }

func (m *HRModule) Resolve(state *company.TeamState, d *Decisions, env *Env) (*shared.ModuleResult, error) {
	hd := d.HR
	if err := validate.Struct(hd); err != nil {
		return nil, fmt.Errorf("hr decisions: %w", err)
	}

	result := shared.NewModuleResult(shared.ModuleHR)
	wf := &state.Workforce

	fired := m.adjustHeadcount(wf, hd, result)

	wf.SalaryMultiplier = hd.SalaryMultiplier

	if hd.TrainingBudget > 0 {
		gain := hd.TrainingBudget / 100_000 * 0.1
		wf.TrainingLevel = shared.Clamp(wf.TrainingLevel+gain, 0, 10)
		result.Costs += hd.TrainingBudget
		result.Record("training", gain)
	}

	// Morale responds to pay against market rate, training, and layoffs
	moraleDelta := (wf.SalaryMultiplier-1.0)*20 + minFloat(hd.TrainingBudget/500_000, 3)
	if fired > 0 {
		moraleDelta -= float64(fired) * 0.5
	}
	wf.Morale = shared.Clamp(wf.Morale+moraleDelta, 0, 100)
	result.Record("morale", moraleDelta)

	m.applyAttrition(wf, env, result)

	payroll := float64(wf.Workers*workerSalary+
		wf.Engineers*engineerSalary+
		wf.Supervisors*supervisorSalary) * wf.SalaryMultiplier
	result.Costs += payroll
	result.Record("payroll", payroll)

	return result, nil
}

func (m *HRModule) adjustHeadcount(wf *company.Workforce, hd HRDecisions, result *shared.ModuleResult) int {
	fired := 0
	apply := func(count *int, delta int, recruitCost float64, label string) {
		switch {
		case delta > 0:
			*count += delta
			result.Costs += float64(delta) * recruitCost
			result.Record("hired:"+label, float64(delta))
		case delta < 0:
			cut := -delta
			if cut > *count {
				cut = *count
			}
			*count -= cut
			fired += cut
			result.Costs += float64(cut) * severanceCost
			result.Record("fired:"+label, float64(cut))
		}
	}
	apply(&wf.Workers, hd.HireWorkers, recruitWorkerCost, "workers")
	apply(&wf.Engineers, hd.HireEngineers, recruitEngineerCost, "engineers")
	apply(&wf.Supervisors, hd.HireSupervisors, recruitSupervisorCost, "supervisors")
	return fired
}

// applyAttrition draws quits from the engine context: low morale raises the
// attrition rate.
func (m *HRModule) applyAttrition(wf *company.Workforce, env *Env, result *shared.ModuleResult) {
	rate := shared.Clamp(0.08-wf.Morale/100*0.06, 0.01, 0.08)
	quits := int(float64(wf.Workers) * rate * env.Ctx.Float64())
	if quits <= 0 {
		return
	}
	if quits > wf.Workers {
		quits = wf.Workers
	}
	wf.Workers -= quits
	result.Record("attrition", float64(quits))
	result.AddMessage(fmt.Sprintf("%d workers quit this quarter", quits))
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
