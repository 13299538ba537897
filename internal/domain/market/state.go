package market

// MarketState is the shared game-wide market snapshot. One instance per game;
// read by every team's resolvers, written once per round by the event engine
// and the market engine after all teams have been processed.
type MarketState struct {
	Round int

	Macro     MacroIndicators
	FX        FXState
	Pressures MarketPressures

	// Per-segment demand keyed by segment ID
	Segments map[string]*SegmentDemand
}

// MacroIndicators are the economy-wide dials events push on.
type MacroIndicators struct {
	GDPGrowth          float64 // percent, e.g. 2.4
	Inflation          float64 // percent
	ConsumerConfidence float64 // index, baseline 100
	Unemployment       float64 // percent
	InterestRate       float64 // percent
}

// FXState carries exchange-rate levels and volatility for import pricing.
type FXState struct {
	USDIndex   float64
	Volatility float64 // [0, 1]
}

// MarketPressures tilt the competitiveness formula.
type MarketPressures struct {
	PriceCompetition      float64 // [0, 1]; higher rewards cheap offers
	QualityExpectations   float64 // [0, 1]; higher rewards quality
	SustainabilityPremium float64 // [0, 1]; higher rewards ESG standing
}

// SegmentDemand is one segment's demand pool for the current round.
type SegmentDemand struct {
	SegmentID  string
	TotalUnits float64
	PriceFloor float64
	PriceCeil  float64
	GrowthRate float64 // per-round fractional growth, e.g. 0.02

	// EventModifier multiplies demand for the current round only; reset to 1
	// after each round and rebuilt from active events.
	EventModifier float64
}

// Clone returns a typed deep copy of the market state.
func (m *MarketState) Clone() *MarketState {
	c := *m
	c.Segments = make(map[string]*SegmentDemand, len(m.Segments))
	for id, seg := range m.Segments {
		s := *seg
		c.Segments[id] = &s
	}
	return &c
}

// DemandFactor converts macro conditions into a demand multiplier around 1.0.
// Confidence is the dominant term; GDP growth contributes a smaller swing.
func (m *MacroIndicators) DemandFactor() float64 {
	confidence := m.ConsumerConfidence / 100.0
	gdp := 1.0 + m.GDPGrowth/100.0*0.5
	factor := confidence * gdp
	if factor < 0.1 {
		factor = 0.1
	}
	return factor
}
