package market

import "sort"

// TeamStanding is one team's scoring inputs for ranking.
type TeamStanding struct {
	TeamID      string
	NetIncome   float64
	EPS         float64
	MarketShare float64 // units sold / total units sold across all teams
}

// Rankings holds the three independent rank numbers per team, each a strict
// total order covering 1..N.
type Rankings struct {
	Overall     map[string]int
	EPS         map[string]int
	MarketShare map[string]int
}

// Rank produces the three rankings. Ties break on ascending team ID so two
// teams never share a rank and reruns are reproducible.
func Rank(standings []TeamStanding) Rankings {
	return Rankings{
		Overall:     rankBy(standings, func(s TeamStanding) float64 { return s.NetIncome }),
		EPS:         rankBy(standings, func(s TeamStanding) float64 { return s.EPS }),
		MarketShare: rankBy(standings, func(s TeamStanding) float64 { return s.MarketShare }),
	}
}

func rankBy(standings []TeamStanding, metric func(TeamStanding) float64) map[string]int {
	ordered := make([]TeamStanding, len(standings))
	copy(ordered, standings)
	sort.Slice(ordered, func(i, j int) bool {
		mi, mj := metric(ordered[i]), metric(ordered[j])
		if mi != mj {
			return mi > mj
		}
		return ordered[i].TeamID < ordered[j].TeamID
	})

	ranks := make(map[string]int, len(ordered))
	for i, s := range ordered {
		ranks[s.TeamID] = i + 1
	}
	return ranks
}
