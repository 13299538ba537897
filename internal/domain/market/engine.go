package market

import (
	"math"
	"sort"

	"github.com/quarterdesk/phonesim-go/internal/domain/shared"
)

// Engine clears all teams' segment offerings against finite shared demand.
// This is the one point in a round where teams affect each other.
//
// Allocation policy: demand is split proportional to competitiveness score
// (share of voice). A team sells min(allocated, capacity); demand a team can
// not produce for is LOST, not redistributed to competitors. Redistribution
// would reward a rival for someone else's supply failure and makes the
// allocation order-dependent, so the simpler policy is used.
type Engine struct {
	weights Weights
}

// Weights calibrates the competitiveness formula. The formula is a weighted
// sum of normalized offer components, sharpened by Gamma before allocation;
// Gamma around 1.5 keeps similar strategies within a 1-3x revenue spread
// instead of winner-take-all.
type Weights struct {
	Price    float64
	Quality  float64
	Features float64
	Brand    float64
	Ad       float64
	ESG      float64
	Gamma    float64

	// AdSaturation is the spend (per segment, per round) at which advertising
	// reaches half effect
	AdSaturation float64
}

// DefaultWeights is the calibration shipped with the game.
func DefaultWeights() Weights {
	return Weights{
		Price:        0.25,
		Quality:      0.25,
		Features:     0.15,
		Brand:        0.20,
		Ad:           0.10,
		ESG:          0.05,
		Gamma:        1.5,
		AdSaturation: 2_000_000,
	}
}

// NewEngine creates a market engine with the given calibration.
func NewEngine(weights Weights) *Engine {
	return &Engine{weights: weights}
}

// Clear converts every team's offerings into realized sales per segment.
// Offerings must include every launched product of every team; teams without
// an offering in a segment sell nothing there. The sum of realized sales in a
// segment never exceeds the segment's demand for the round.
func (e *Engine) Clear(state *MarketState, offerings []Offering) []SegmentSales {
	bySegment := make(map[string][]Offering)
	for _, o := range offerings {
		bySegment[o.SegmentID] = append(bySegment[o.SegmentID], o)
	}

	var sales []SegmentSales
	for _, segmentID := range SegmentIDs {
		seg, ok := state.Segments[segmentID]
		if !ok {
			continue
		}
		offers := bySegment[segmentID]
		if len(offers) == 0 {
			continue // nobody sells
		}
		// Stable order regardless of caller ordering
		sort.Slice(offers, func(i, j int) bool { return offers[i].TeamID < offers[j].TeamID })

		sales = append(sales, e.clearSegment(state, seg, offers)...)
	}
	return sales
}

func (e *Engine) clearSegment(state *MarketState, seg *SegmentDemand, offers []Offering) []SegmentSales {
	demand := seg.TotalUnits * seg.EventModifier * state.Macro.DemandFactor()
	if demand < 0 {
		demand = 0
	}

	scores := make([]float64, len(offers))
	total := 0.0
	for i, o := range offers {
		scores[i] = e.score(state, seg, o)
		total += scores[i]
	}

	results := make([]SegmentSales, 0, len(offers))
	remaining := int(math.Floor(demand))
	for i, o := range offers {
		var share float64
		if total <= 0 {
			// Zero or all-zero scores: split evenly
			share = 1.0 / float64(len(offers))
		} else {
			share = scores[i] / total
		}

		allocated := int(math.Floor(demand * share))
		if allocated > remaining {
			allocated = remaining // rounding overshoot guard
		}
		remaining -= allocated

		sold := allocated
		if o.Capacity < sold {
			sold = o.Capacity
		}
		if sold < 0 {
			sold = 0
		}

		segShare := 0.0
		if demand > 0 {
			segShare = float64(sold) / demand
		}

		results = append(results, SegmentSales{
			TeamID:    o.TeamID,
			SegmentID: seg.SegmentID,
			UnitsSold: sold,
			Revenue:   float64(sold) * o.Price,
			Share:     segShare,
			LostUnits: allocated - sold,
		})
	}
	return results
}

// score combines an offering into a single competitiveness number. Components
// are normalized to [0, 1]; market pressures shift weight between price,
// quality, and sustainability.
func (e *Engine) score(state *MarketState, seg *SegmentDemand, o Offering) float64 {
	w := e.weights
	p := state.Pressures

	priceAttr := priceAttractiveness(o.Price, seg.PriceFloor, seg.PriceCeil)
	quality := shared.Clamp(o.Quality/100, 0, 1)
	features := shared.Clamp(o.Features/100, 0, 1)
	brand := shared.Clamp(o.Brand/100, 0, 1)
	esg := shared.Clamp(o.ESG/100, 0, 1)
	ad := o.AdSpend / (o.AdSpend + w.AdSaturation) // diminishing returns

	wPrice := w.Price * (0.5 + p.PriceCompetition)
	wQuality := w.Quality * (0.5 + p.QualityExpectations)
	wESG := w.ESG * (0.5 + p.SustainabilityPremium)

	score := wPrice*priceAttr +
		wQuality*quality +
		w.Features*features +
		w.Brand*brand +
		w.Ad*ad +
		wESG*esg

	if !shared.IsFinite(score) || score < 0 {
		return 0
	}
	return math.Pow(score, w.Gamma)
}

// priceAttractiveness maps a price to [0, 1] within the segment band: 1 at
// the floor, 0.25 at the ceiling, harshly penalized outside the band.
func priceAttractiveness(price, floor, ceil float64) float64 {
	if ceil <= floor {
		return 0.5
	}
	if price <= 0 {
		return 0
	}
	if price < floor {
		// Below the band reads as a suspiciously cheap phone
		return 0.8
	}
	if price > ceil {
		over := (price - ceil) / ceil
		return shared.Clamp(0.25-over, 0, 0.25)
	}
	pos := (price - floor) / (ceil - floor)
	return 1.0 - 0.75*pos
}

// AdvanceDemand grows each segment's base demand by its growth rate and
// resets event modifiers for the next round. Called once per round after
// clearing.
func AdvanceDemand(state *MarketState) {
	for _, seg := range state.Segments {
		seg.TotalUnits *= 1 + seg.GrowthRate
		seg.EventModifier = 1
	}
}
