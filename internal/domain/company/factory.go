package company

// Factory is one manufacturing site. Allocation maps segment ID to the number
// of units planned for production this round; it is rewritten by the Factory
// resolver each round and read by the market engine as the sales cap.
type Factory struct {
	ID              string
	Region          string
	Machines        int
	UnitsPerMachine int
	Efficiency      float64 // [0.5, 2.0], multiplies effective capacity
	GreenRating     float64 // [0, 100]
	UnitCost        float64 // accumulated cost per unit this round
	Allocation      map[string]int
}

// Capacity is the maximum units the factory can build in one round.
func (f *Factory) Capacity() int {
	return int(float64(f.Machines*f.UnitsPerMachine) * f.Efficiency)
}

// Allocated sums the planned units across segments.
func (f *Factory) Allocated() int {
	total := 0
	for _, units := range f.Allocation {
		total += units
	}
	return total
}

func (f *Factory) clone() Factory {
	c := *f
	c.Allocation = make(map[string]int, len(f.Allocation))
	for k, v := range f.Allocation {
		c.Allocation[k] = v
	}
	return c
}
