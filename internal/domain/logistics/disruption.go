package logistics

// Disruption is an external shock (port strike, typhoon, canal blockage)
// degrading specific routes and methods.
type Disruption struct {
	Name string

	// Affected route keys as "from->to"; empty means all routes
	AffectedRoutes map[string]bool
	// Affected method names; empty means all methods
	AffectedMethods map[string]bool

	TimeMultiplier        float64
	CostMultiplier        float64
	ReliabilityMultiplier float64
}

// Matches reports whether the disruption applies to a calculation.
func (d *Disruption) Matches(c *Calculation) bool {
	if len(d.AffectedRoutes) > 0 {
		key := routeKey(c.Route.From, c.Route.To)
		if !d.AffectedRoutes[key] {
			return false
		}
	}
	if len(d.AffectedMethods) > 0 && !d.AffectedMethods[c.Method.Name] {
		return false
	}
	return true
}

// ApplyDisruption returns a degraded copy of a prior calculation when the
// disruption's route and method sets match; otherwise the calculation is
// returned unchanged.
func ApplyDisruption(c *Calculation, d *Disruption) *Calculation {
	out := *c
	if !d.Matches(c) {
		return &out
	}

	out.TransitDays *= d.TimeMultiplier
	out.ClearanceDays *= d.TimeMultiplier
	out.TotalDays = out.TransitDays + out.ClearanceDays

	out.FreightCost *= d.CostMultiplier
	out.InsuranceCost *= d.CostMultiplier
	out.TotalCost = out.FreightCost + out.InsuranceCost + out.HandlingCost

	out.OnTimeProbability *= d.ReliabilityMultiplier
	if out.OnTimeProbability < 0.05 {
		out.OnTimeProbability = 0.05
	}
	out.ExpectedDelayDays = (1 - out.OnTimeProbability) * out.TotalDays * 0.3

	return &out
}
