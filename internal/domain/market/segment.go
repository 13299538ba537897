package market

// Segment IDs for the five customer markets.
const (
	SegmentBudget       = "budget"
	SegmentGeneral      = "general"
	SegmentEnthusiast   = "enthusiast"
	SegmentProfessional = "professional"
	SegmentActive       = "active"
)

// SegmentIDs lists all segments in a fixed order so iteration is stable.
var SegmentIDs = []string{
	SegmentBudget,
	SegmentGeneral,
	SegmentEnthusiast,
	SegmentProfessional,
	SegmentActive,
}

// DefaultMarketState builds the round-zero market used at game start.
func DefaultMarketState() *MarketState {
	return &MarketState{
		Round: 0,
		Macro: MacroIndicators{
			GDPGrowth:          2.4,
			Inflation:          2.1,
			ConsumerConfidence: 100,
			Unemployment:       4.5,
			InterestRate:       3.0,
		},
		FX: FXState{
			USDIndex:   100,
			Volatility: 0.1,
		},
		Pressures: MarketPressures{
			PriceCompetition:      0.5,
			QualityExpectations:   0.5,
			SustainabilityPremium: 0.3,
		},
		Segments: map[string]*SegmentDemand{
			SegmentBudget: {
				SegmentID:     SegmentBudget,
				TotalUnits:    120_000,
				PriceFloor:    80,
				PriceCeil:     250,
				GrowthRate:    0.015,
				EventModifier: 1,
			},
			SegmentGeneral: {
				SegmentID:     SegmentGeneral,
				TotalUnits:    90_000,
				PriceFloor:    250,
				PriceCeil:     600,
				GrowthRate:    0.02,
				EventModifier: 1,
			},
			SegmentEnthusiast: {
				SegmentID:     SegmentEnthusiast,
				TotalUnits:    45_000,
				PriceFloor:    600,
				PriceCeil:     1100,
				GrowthRate:    0.025,
				EventModifier: 1,
			},
			SegmentProfessional: {
				SegmentID:     SegmentProfessional,
				TotalUnits:    30_000,
				PriceFloor:    800,
				PriceCeil:     1600,
				GrowthRate:    0.02,
				EventModifier: 1,
			},
			SegmentActive: {
				SegmentID:     SegmentActive,
				TotalUnits:    25_000,
				PriceFloor:    300,
				PriceCeil:     800,
				GrowthRate:    0.03,
				EventModifier: 1,
			},
		},
	}
}
