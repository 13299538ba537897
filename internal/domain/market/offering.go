package market

// Offering is one team's bid for a segment's demand: everything the
// competitiveness formula reads, collected after all module resolvers have
// run for the team.
type Offering struct {
	TeamID    string
	SegmentID string
	Price     float64
	Quality   float64 // [0, 100]
	Features  float64 // [0, 100]
	Brand     float64 // [0, 100]
	AdSpend   float64 // this round's advertising budget for the segment
	ESG       float64 // [0, 100]
	Capacity  int     // units the team can actually deliver this round
}

// SegmentSales is the cleared outcome for one team in one segment.
type SegmentSales struct {
	TeamID    string
	SegmentID string
	UnitsSold int
	Revenue   float64
	Share     float64 // fraction of segment demand captured, [0, 1]
	LostUnits int     // allocated demand the team could not produce
}
