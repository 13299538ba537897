package achievements

// Metrics is one team's metric snapshot for a round, keyed by metric name
// (e.g. "cash", "netIncome", "marketShare", "esg", "techLevel").
type Metrics map[string]float64

// Flags carries orchestrator-precomputed booleans for custom requirements
// (e.g. "usedRouteComparison", "survivedRecession").
type Flags map[string]bool

// Engine evaluates the static catalog against per-team progress after each
// round. Evaluation is idempotent for already-awarded achievements.
type Engine struct {
	catalog []Achievement
}

// NewEngine creates an achievement engine over a catalog.
func NewEngine(catalog []Achievement) *Engine {
	return &Engine{catalog: catalog}
}

// Catalog returns the engine's read-only achievement list.
func (e *Engine) Catalog() []Achievement {
	return e.catalog
}

// Evaluate updates sustained counters from this round's metrics, then awards
// every not-yet-held achievement whose requirements are all satisfied.
// Returns the new awards; progress is mutated in place and its awarded set
// never shrinks.
func (e *Engine) Evaluate(progress *Progress, metrics Metrics, flags Flags, round int) []Award {
	e.updateSustained(progress, metrics)

	var newAwards []Award
	for _, achievement := range e.catalog {
		if progress.Has(achievement.ID) {
			continue // idempotent: re-evaluation is a no-op
		}
		if !e.satisfied(achievement, progress, metrics, flags) {
			continue
		}
		award := Award{
			AchievementID: achievement.ID,
			Round:         round,
			Points:        achievement.Tier.Points(),
		}
		progress.Awarded[achievement.ID] = award
		newAwards = append(newAwards, award)
	}
	return newAwards
}

// updateSustained advances every sustained counter named anywhere in the
// catalog: increment while the condition holds, reset to zero when it breaks.
func (e *Engine) updateSustained(progress *Progress, metrics Metrics) {
	seen := make(map[string]bool)
	for _, achievement := range e.catalog {
		for _, req := range achievement.Requirements {
			if req.Kind != KindSustained {
				continue
			}
			key := sustainedKey(req)
			if seen[key] {
				continue
			}
			seen[key] = true
			if compare(metrics[req.Metric], req.Compare, req.Value) {
				progress.Sustained[key]++
			} else {
				progress.Sustained[key] = 0
			}
		}
	}
}

func (e *Engine) satisfied(a Achievement, progress *Progress, metrics Metrics, flags Flags) bool {
	for _, req := range a.Requirements {
		switch req.Kind {
		case KindThreshold:
			if !compare(metrics[req.Metric], req.Compare, req.Value) {
				return false
			}
		case KindSustained:
			if progress.Sustained[sustainedKey(req)] < req.Rounds {
				return false
			}
		case KindCustom:
			if !flags[req.Metric] {
				return false
			}
		default:
			return false
		}
	}
	return len(a.Requirements) > 0
}

func compare(value float64, cmp Comparison, threshold float64) bool {
	if cmp == AtMost {
		return value <= threshold
	}
	return value >= threshold
}

// CategoryTotals groups a team's awarded points by achievement category.
func (e *Engine) CategoryTotals(progress *Progress) map[string]int {
	byID := make(map[string]Achievement, len(e.catalog))
	for _, a := range e.catalog {
		byID[a.ID] = a
	}
	totals := make(map[string]int)
	for id, award := range progress.Awarded {
		if a, ok := byID[id]; ok {
			totals[a.Category] += award.Points
		}
	}
	return totals
}
