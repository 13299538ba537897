package modules

import (
	"fmt"

	"github.com/quarterdesk/phonesim-go/internal/domain/company"
	"github.com/quarterdesk/phonesim-go/internal/domain/shared"
)

// brandDecayRate is the compounding per-round loss in a segment the team
// sells in but spends nothing on.
const brandDecayRate = 0.02

// adSaturation is the per-segment spend at which advertising reaches half
// effect.
const adSaturation = 2_000_000

// MarketingModule resolves advertising, brand building and decay, and price
// changes. Runs after R&D so newly launched products can be advertised and
// repriced the same round.
type MarketingModule struct{}

func (m *MarketingModule) Name() shared.ModuleName { return shared.ModuleMarketing }

func (m *MarketingModule) Resolve(state *company.TeamState, d *Decisions, env *Env) (*shared.ModuleResult, error) {
	md := d.Marketing
	if err := validate.Struct(md); err != nil {
		return nil, fmt.Errorf("marketing decisions: %w", err)
	}

	result := shared.NewModuleResult(shared.ModuleMarketing)

	m.applyAdvertising(state, md, result)
	m.applyPriceChanges(state, md, result)

	return result, nil
}

// applyAdvertising builds brand with diminishing returns and decays it in
// neglected segments: 2% compounding per round of zero spend.
func (m *MarketingModule) applyAdvertising(state *company.TeamState, md MarketingDecisions, result *shared.ModuleResult) {
	for i := range state.Products {
		p := &state.Products[i]
		if !p.Launched {
			continue
		}
		segmentID := p.SegmentID
		spend := md.AdBudgets[segmentID]

		if spend > 0 {
			gain := 8 * spend / (spend + adSaturation)
			state.BrandValue[segmentID] = shared.Clamp(state.BrandValue[segmentID]+gain, 0, 100)
			state.ZeroAdStreak[segmentID] = 0
			result.Costs += spend
			result.Record("brand:"+segmentID, gain)
			continue
		}

		state.ZeroAdStreak[segmentID]++
		decayed := state.BrandValue[segmentID] * (1 - brandDecayRate)
		result.Record("brand:"+segmentID, decayed-state.BrandValue[segmentID])
		state.BrandValue[segmentID] = decayed
		if state.ZeroAdStreak[segmentID] == 3 {
			result.AddMessage(fmt.Sprintf("brand in segment %s is eroding after %d quarters without advertising",
				segmentID, state.ZeroAdStreak[segmentID]))
		}
	}
}

func (m *MarketingModule) applyPriceChanges(state *company.TeamState, md MarketingDecisions, result *shared.ModuleResult) {
	for _, productID := range sortedKeys(md.PriceChanges) {
		price := md.PriceChanges[productID]
		product := findProduct(state, productID)
		if product == nil {
			result.AddMessage(fmt.Sprintf("price change skipped: %s: %v", productID, company.ErrProductNotFound))
			continue
		}
		result.Record("price:"+productID, price-product.Price)
		product.Price = price
	}
}
