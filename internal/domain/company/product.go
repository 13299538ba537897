package company

// Product is one phone model targeting a single segment.
type Product struct {
	ID        string
	Name      string
	SegmentID string
	Quality   float64 // [0, 100]
	Features  float64 // [0, 100]
	Price     float64
	Launched  bool
}
