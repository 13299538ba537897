package achievements

import "fmt"

// Progress is one team's mutable achievement state: which badges it holds and
// where its sustained-condition counters stand. The awarded set only grows.
type Progress struct {
	TeamID  string
	Awarded map[string]Award // achievement ID -> award

	// Sustained counters keyed by requirement identity; incremented when the
	// condition holds for a round, reset to zero otherwise. Kept
	// incrementally instead of re-scanning history, but reproducible from
	// history alone.
	Sustained map[string]int
}

// NewProgress creates empty progress for a team.
func NewProgress(teamID string) *Progress {
	return &Progress{
		TeamID:    teamID,
		Awarded:   make(map[string]Award),
		Sustained: make(map[string]int),
	}
}

// Clone returns a typed deep copy.
func (p *Progress) Clone() *Progress {
	c := NewProgress(p.TeamID)
	for k, v := range p.Awarded {
		c.Awarded[k] = v
	}
	for k, v := range p.Sustained {
		c.Sustained[k] = v
	}
	return c
}

// Has reports whether the achievement has already been awarded.
func (p *Progress) Has(achievementID string) bool {
	_, ok := p.Awarded[achievementID]
	return ok
}

// Score sums awarded tier points (infamy subtracts).
func (p *Progress) Score() int {
	total := 0
	for _, award := range p.Awarded {
		total += award.Points
	}
	return total
}

// sustainedKey identifies a sustained requirement's counter. Two achievements
// sharing the same metric/compare/value share a counter; differing thresholds
// do not.
func sustainedKey(r Requirement) string {
	return fmt.Sprintf("%s|%s|%g", r.Metric, r.Compare, r.Value)
}
