package logistics

import (
	"fmt"
	"sort"
)

// Strategy parameterizes method selection for a material order.
type Strategy struct {
	DefaultMethod string
	RushMethod    string
	MaxCost       float64 // 0 = no cost threshold
	MaxDays       float64 // 0 = no time threshold
	Rush          bool
}

// Comparison is one method's normalized standing against the alternatives on
// the same route.
type Comparison struct {
	Calculation
	CostEfficiency float64 // [0, 100], 100 = cheapest option
	TimeEfficiency float64 // [0, 100], 100 = fastest option
	OverallScore   float64 // 0.6*cost + 0.4*time
}

// Recommendation is the result of constraint relaxation: always a usable
// method, with warnings explaining any constraint that had to give.
type Recommendation struct {
	Best     Comparison
	Options  []Comparison
	Warnings []string
}

// OptimalMethod picks a method under a strategy: among methods meeting both
// thresholds, the most reliable wins; otherwise the strategy's default (rush
// default when rushing) is used.
func OptimalMethod(catalog *Catalog, from, to string, weightKg, volumeM3 float64, strategy Strategy) (Method, error) {
	route, err := catalog.Find(from, to)
	if err != nil {
		return Method{}, err
	}

	var qualifying []Calculation
	for _, m := range route.Methods {
		calc := baseline(route, m, weightKg, volumeM3)
		if strategy.MaxCost > 0 && calc.TotalCost > strategy.MaxCost {
			continue
		}
		if strategy.MaxDays > 0 && calc.TotalDays > strategy.MaxDays {
			continue
		}
		qualifying = append(qualifying, calc)
	}

	if len(qualifying) > 0 {
		sort.Slice(qualifying, func(i, j int) bool {
			if qualifying[i].Method.Reliability != qualifying[j].Method.Reliability {
				return qualifying[i].Method.Reliability > qualifying[j].Method.Reliability
			}
			return qualifying[i].Method.Name < qualifying[j].Method.Name
		})
		return qualifying[0].Method, nil
	}

	fallback := strategy.DefaultMethod
	if strategy.Rush && strategy.RushMethod != "" {
		fallback = strategy.RushMethod
	}
	return route.Method(fallback)
}

// CompareOptions scores every method on a route. Cost and time are normalized
// to 0-100 efficiency (100 = best on the route) and combined 60% cost, 40%
// time; the result is sorted best first.
func CompareOptions(catalog *Catalog, from, to string, weightKg, volumeM3 float64) ([]Comparison, error) {
	route, err := catalog.Find(from, to)
	if err != nil {
		return nil, err
	}

	calcs := make([]Calculation, 0, len(route.Methods))
	minCost, maxCost := 0.0, 0.0
	minDays, maxDays := 0.0, 0.0
	for i, m := range route.Methods {
		calc := baseline(route, m, weightKg, volumeM3)
		if i == 0 {
			minCost, maxCost = calc.TotalCost, calc.TotalCost
			minDays, maxDays = calc.TotalDays, calc.TotalDays
		} else {
			minCost = min(minCost, calc.TotalCost)
			maxCost = max(maxCost, calc.TotalCost)
			minDays = min(minDays, calc.TotalDays)
			maxDays = max(maxDays, calc.TotalDays)
		}
		calcs = append(calcs, calc)
	}

	comparisons := make([]Comparison, 0, len(calcs))
	for _, calc := range calcs {
		costEff := normalize(calc.TotalCost, minCost, maxCost)
		timeEff := normalize(calc.TotalDays, minDays, maxDays)
		comparisons = append(comparisons, Comparison{
			Calculation:    calc,
			CostEfficiency: costEff,
			TimeEfficiency: timeEff,
			OverallScore:   0.6*costEff + 0.4*timeEff,
		})
	}

	sort.Slice(comparisons, func(i, j int) bool {
		if comparisons[i].OverallScore != comparisons[j].OverallScore {
			return comparisons[i].OverallScore > comparisons[j].OverallScore
		}
		return comparisons[i].Method.Name < comparisons[j].Method.Name
	})
	return comparisons, nil
}

// normalize maps v in [lo, hi] to [0, 100] where lo is best. A degenerate
// range (single method, or identical values) scores 100.
func normalize(v, lo, hi float64) float64 {
	if hi <= lo {
		return 100
	}
	return 100 * (hi - v) / (hi - lo)
}

// Recommendations applies constraint relaxation in order: methods meeting
// budget and deadline, then budget only, then deadline only, then the best
// overall regardless. Each relaxation step attaches a warning instead of
// failing; the caller always gets a usable recommendation.
func Recommendations(catalog *Catalog, from, to string, weightKg, volumeM3, budget, deadlineDays float64) (*Recommendation, error) {
	options, err := CompareOptions(catalog, from, to, weightKg, volumeM3)
	if err != nil {
		return nil, err
	}

	rec := &Recommendation{Options: options}

	withinBoth := filterOptions(options, func(c Comparison) bool {
		return c.TotalCost <= budget && c.TotalDays <= deadlineDays
	})
	if len(withinBoth) > 0 {
		rec.Best = withinBoth[0]
		return rec, nil
	}

	withinBudget := filterOptions(options, func(c Comparison) bool {
		return c.TotalCost <= budget
	})
	if len(withinBudget) > 0 {
		rec.Best = withinBudget[0]
		rec.Warnings = append(rec.Warnings, fmt.Sprintf(
			"no method meets the %.0f-day deadline within budget; %s arrives in %.1f days",
			deadlineDays, rec.Best.Method.Name, rec.Best.TotalDays))
		return rec, nil
	}

	withinTime := filterOptions(options, func(c Comparison) bool {
		return c.TotalDays <= deadlineDays
	})
	if len(withinTime) > 0 {
		rec.Best = withinTime[0]
		rec.Warnings = append(rec.Warnings, fmt.Sprintf(
			"no method fits the $%.0f budget; %s costs $%.0f",
			budget, rec.Best.Method.Name, rec.Best.TotalCost))
		return rec, nil
	}

	rec.Best = options[0]
	rec.Warnings = append(rec.Warnings,
		fmt.Sprintf("no method meets the $%.0f budget", budget),
		fmt.Sprintf("no method meets the %.0f-day deadline", deadlineDays),
		fmt.Sprintf("falling back to best overall option: %s ($%.0f, %.1f days)",
			rec.Best.Method.Name, rec.Best.TotalCost, rec.Best.TotalDays))
	return rec, nil
}

func filterOptions(options []Comparison, keep func(Comparison) bool) []Comparison {
	var out []Comparison
	for _, o := range options {
		if keep(o) {
			out = append(out, o)
		}
	}
	return out
}
