package modules

import (
	"fmt"

	"github.com/quarterdesk/phonesim-go/internal/domain/company"
	"github.com/quarterdesk/phonesim-go/internal/domain/shared"
)

const newProductCost = 2_000_000

// RnDModule resolves research budget, product upgrades, launches, and patent
// grants. Runs after HR so engineer headcount is final for the round.
type RnDModule struct{}

func (m *RnDModule) Name() shared.ModuleName { return shared.ModuleRnD }

func (m *RnDModule) Resolve(state *company.TeamState, d *Decisions, env *Env) (*shared.ModuleResult, error) {
	rd := d.RnD
	if err := validate.Struct(rd); err != nil {
		return nil, fmt.Errorf("rnd decisions: %w", err)
	}

	result := shared.NewModuleResult(shared.ModuleRnD)

	if rd.Budget > 0 {
		// Engineers amplify the budget; higher tech levels cost more to push
		engineerFactor := 1 + float64(state.Workforce.Engineers)/100
		gain := rd.Budget / 2_000_000 * 0.3 * engineerFactor / state.TechLevel
		state.TechLevel = shared.Clamp(state.TechLevel+gain, 1, 10)
		result.Costs += rd.Budget
		result.Record("techLevel", gain)

		// Patent grants are probability-gated by budget
		patentChance := minFloat(rd.Budget/10_000_000, 0.5)
		if env.Ctx.Chance(patentChance) {
			state.Patents++
			result.AddMessage("patent granted")
			result.Record("patents", 1)
		}
	}

	m.applyUpgrades(state, rd, result)
	m.launchProducts(state, rd, result)

	return result, nil
}

func (m *RnDModule) applyUpgrades(state *company.TeamState, rd RnDDecisions, result *shared.ModuleResult) {
	for _, up := range rd.Upgrades {
		product := findProduct(state, up.ProductID)
		if product == nil {
			result.AddMessage(fmt.Sprintf("upgrade skipped: %s: %v", up.ProductID, company.ErrProductNotFound))
			continue
		}
		if up.QualityBudget > 0 {
			gain := up.QualityBudget / 500_000 * 2 * (1 + state.TechLevel*0.1)
			product.Quality = shared.Clamp(product.Quality+gain, 0, 100)
			result.Costs += up.QualityBudget
		}
		if up.FeatureBudget > 0 {
			gain := up.FeatureBudget / 500_000 * 2.5 * (1 + state.TechLevel*0.1)
			product.Features = shared.Clamp(product.Features+gain, 0, 100)
			result.Costs += up.FeatureBudget
		}
	}
}

func (m *RnDModule) launchProducts(state *company.TeamState, rd RnDDecisions, result *shared.ModuleResult) {
	for _, np := range rd.NewProducts {
		if state.ProductInSegment(np.SegmentID) != nil {
			result.AddMessage(fmt.Sprintf("launch skipped: already selling in segment %s", np.SegmentID))
			continue
		}
		quality := shared.Clamp(35+state.TechLevel*7, 0, 100)
		state.Products = append(state.Products, company.Product{
			ID:        fmt.Sprintf("%s-%s-r%d", state.TeamID, np.SegmentID, len(state.Products)+1),
			Name:      np.Name,
			SegmentID: np.SegmentID,
			Quality:   quality,
			Features:  quality - 5,
			Price:     np.Price,
			Launched:  true,
		})
		if _, ok := state.BrandValue[np.SegmentID]; !ok {
			state.BrandValue[np.SegmentID] = 15 // new entrant, unknown brand
		}
		result.Costs += newProductCost
		result.AddMessage(fmt.Sprintf("launched %q in segment %s at quality %.0f", np.Name, np.SegmentID, quality))
	}
}

func findProduct(state *company.TeamState, productID string) *company.Product {
	for i := range state.Products {
		if state.Products[i].ID == productID {
			return &state.Products[i]
		}
	}
	return nil
}
