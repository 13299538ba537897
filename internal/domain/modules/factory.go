package modules

import (
	"fmt"
	"sort"

	"github.com/quarterdesk/phonesim-go/internal/domain/company"
	"github.com/quarterdesk/phonesim-go/internal/domain/logistics"
	"github.com/quarterdesk/phonesim-go/internal/domain/shared"
)

// Component cost per unit by segment; the bill of materials scales with how
// premium the segment is.
var unitMaterialCost = map[string]float64{
	"budget":       60,
	"general":      120,
	"enthusiast":   260,
	"professional": 380,
	"active":       180,
}

const unitsPerWorker = 900

// FactoryModule resolves production planning, plant investment, and material
// ordering. Runs first: later modules and the market engine read the
// allocation and unit costs it writes.
type FactoryModule struct{}

func (m *FactoryModule) Name() shared.ModuleName { return shared.ModuleFactory }

func (m *FactoryModule) Resolve(state *company.TeamState, d *Decisions, env *Env) (*shared.ModuleResult, error) {
	fd := d.Factory
	if err := validate.Struct(fd); err != nil {
		return nil, fmt.Errorf("factory decisions: %w", err)
	}

	result := shared.NewModuleResult(shared.ModuleFactory)

	m.invest(state, fd, result)
	m.orderMaterials(state, fd, env, result)
	m.planProduction(state, fd, result)

	return result, nil
}

// invest applies efficiency and green spending before capacity is computed so
// this round's production already benefits.
func (m *FactoryModule) invest(state *company.TeamState, fd FactoryDecisions, result *shared.ModuleResult) {
	if fd.EfficiencyInvestment > 0 {
		gain := fd.EfficiencyInvestment / 5_000_000 * 0.1
		for i := range state.Factories {
			f := &state.Factories[i]
			f.Efficiency = shared.Clamp(f.Efficiency+gain, 0.5, 2.0)
		}
		result.Costs += fd.EfficiencyInvestment
		result.Record("efficiency", gain)
	}

	if fd.GreenInvestment > 0 {
		greenGain := fd.GreenInvestment / 1_000_000 * 5
		esgGain := fd.GreenInvestment / 1_000_000 * 2
		for i := range state.Factories {
			f := &state.Factories[i]
			f.GreenRating = shared.Clamp(f.GreenRating+greenGain, 0, 100)
		}
		state.ESGScore = shared.Clamp(state.ESGScore+esgGain, 0, 100)
		result.Costs += fd.GreenInvestment
		result.Record("esg", esgGain)
	}
}

// orderMaterials prices each shipment through the logistics engine. A failed
// route lookup makes that one order unplaceable; the module itself still
// succeeds.
func (m *FactoryModule) orderMaterials(state *company.TeamState, fd FactoryDecisions, env *Env, result *shared.ModuleResult) {
	for _, order := range fd.MaterialOrders {
		method, err := logistics.OptimalMethod(env.Routes, order.From, order.To,
			order.WeightKg, order.VolumeM3, logistics.Strategy{
				DefaultMethod: "sea",
				RushMethod:    "air",
				MaxCost:       order.Budget,
				MaxDays:       order.DeadlineDays,
				Rush:          order.Rush,
			})
		if err != nil {
			result.AddMessage(fmt.Sprintf("material order %s->%s unplaceable: %v", order.From, order.To, err))
			continue
		}

		calc, err := logistics.Calculate(env.Routes, logistics.Shipment{
			From: order.From, To: order.To, Method: method.Name,
			WeightKg: order.WeightKg, VolumeM3: order.VolumeM3,
		}, env.Ctx)
		if err != nil {
			result.AddMessage(fmt.Sprintf("material order %s->%s unplaceable: %v", order.From, order.To, err))
			continue
		}

		result.Costs += calc.TotalCost
		result.Record("shipping", calc.TotalCost)
		msg := fmt.Sprintf("materials shipped %s->%s by %s: $%.0f, %.1f days",
			order.From, order.To, method.Name, calc.TotalCost, calc.TotalDays)
		if calc.Inspected {
			msg += " (customs inspection)"
			result.Record("inspectedShipments", 1)
		}
		result.AddMessage(msg)
	}
}

// planProduction clamps the requested plan to machine capacity and workforce
// throughput, writes the allocation, and accrues production cost.
func (m *FactoryModule) planProduction(state *company.TeamState, fd FactoryDecisions, result *shared.ModuleResult) {
	workforceCap := int(float64(state.Workforce.Workers*unitsPerWorker) *
		(0.6 + 0.4*state.Workforce.Morale/100) *
		(1 + state.Workforce.TrainingLevel*0.03))

	for i := range state.Factories {
		f := &state.Factories[i]
		capacity := f.Capacity()
		if workforceCap < capacity {
			capacity = workforceCap
		}

		f.Allocation = make(map[string]int)
		remaining := capacity
		productionCost := 0.0

		// Stable iteration: deterministic across runs
		for _, segmentID := range sortedKeys(fd.Production) {
			requested := fd.Production[segmentID]
			if requested <= 0 || remaining <= 0 {
				continue
			}
			if state.ProductInSegment(segmentID) == nil {
				result.AddMessage(fmt.Sprintf("no launched product for segment %s; production skipped", segmentID))
				continue
			}
			units := requested
			if units > remaining {
				units = remaining
				result.AddMessage(fmt.Sprintf("segment %s production clamped to %d units by capacity", segmentID, units))
			}
			remaining -= units
			f.Allocation[segmentID] = units

			materials := unitMaterialCost[segmentID]
			if materials == 0 {
				materials = 150
			}
			productionCost += float64(units) * materials
		}

		if produced := f.Allocated(); produced > 0 {
			f.UnitCost = productionCost / float64(produced)
		} else {
			f.UnitCost = 0
		}
		result.Costs += productionCost
		result.Record("production", productionCost)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
