package company

import (
	"fmt"

	"github.com/quarterdesk/phonesim-go/internal/domain/shared"
)

// TeamState is a team's full company snapshot. It is owned exclusively by its
// team and mutated only by the module resolvers and the market engine during
// round processing; between rounds it lives in persistence.
type TeamState struct {
	TeamID string

	// Finances
	Cash              float64
	CumulativeRevenue float64
	CumulativeCosts   float64
	NetIncome         float64 // most recent round
	SharesOutstanding float64
	ESGScore          float64
	TechLevel         float64
	Patents           int

	Debt      []DebtInstrument
	Dividends []DividendRecord

	// Per-segment brand value in [0, 100], keyed by segment ID
	BrandValue map[string]float64

	// Rounds of consecutive zero ad spend per segment, drives brand decay
	ZeroAdStreak map[string]int

	Workforce Workforce
	Factories []Factory
	Products  []Product
}

// Workforce holds headcounts and the levers HR pulls on them.
type Workforce struct {
	Workers          int
	Engineers        int
	Supervisors      int
	Morale           float64 // [0, 100]
	TrainingLevel    float64 // [0, 10]
	SalaryMultiplier float64 // 1.0 = market rate
}

// DebtInstrument is one outstanding loan.
type DebtInstrument struct {
	Principal       float64
	AnnualRate      float64
	RoundsRemaining int
}

// DividendRecord is one dividend payment, kept for achievement evaluation.
type DividendRecord struct {
	Round     int
	PerShare  float64
	TotalPaid float64
}

// Validate checks every numeric field for finiteness. A resolver whose output
// fails this check is treated as failed and its state change discarded.
func (s *TeamState) Validate() error {
	values := []float64{
		s.Cash, s.CumulativeRevenue, s.CumulativeCosts, s.NetIncome,
		s.SharesOutstanding, s.ESGScore, s.TechLevel,
		s.Workforce.Morale, s.Workforce.TrainingLevel, s.Workforce.SalaryMultiplier,
	}
	for _, d := range s.Debt {
		values = append(values, d.Principal, d.AnnualRate)
	}
	for _, v := range s.BrandValue {
		values = append(values, v)
	}
	for i := range s.Factories {
		f := &s.Factories[i]
		values = append(values, f.Efficiency, f.GreenRating, f.UnitCost)
		for _, alloc := range f.Allocation {
			values = append(values, float64(alloc))
		}
	}
	for i := range s.Products {
		p := &s.Products[i]
		values = append(values, p.Quality, p.Features, p.Price)
	}
	if !shared.AllFinite(values...) {
		return fmt.Errorf("team %s: %w", s.TeamID, shared.ErrNonFiniteState)
	}
	return nil
}

// Clone returns a typed deep copy. Explicit copy construction keeps ownership
// obvious and lets Validate run on the copy instead of trusting a
// serialization round-trip.
func (s *TeamState) Clone() *TeamState {
	c := *s

	c.Debt = make([]DebtInstrument, len(s.Debt))
	copy(c.Debt, s.Debt)

	c.Dividends = make([]DividendRecord, len(s.Dividends))
	copy(c.Dividends, s.Dividends)

	c.BrandValue = make(map[string]float64, len(s.BrandValue))
	for k, v := range s.BrandValue {
		c.BrandValue[k] = v
	}

	c.ZeroAdStreak = make(map[string]int, len(s.ZeroAdStreak))
	for k, v := range s.ZeroAdStreak {
		c.ZeroAdStreak[k] = v
	}

	c.Factories = make([]Factory, len(s.Factories))
	for i := range s.Factories {
		c.Factories[i] = s.Factories[i].clone()
	}

	c.Products = make([]Product, len(s.Products))
	copy(c.Products, s.Products)

	return &c
}

// TotalDebt sums outstanding principal.
func (s *TeamState) TotalDebt() float64 {
	total := 0.0
	for _, d := range s.Debt {
		total += d.Principal
	}
	return total
}

// Headcount is the total number of employees.
func (s *TeamState) Headcount() int {
	return s.Workforce.Workers + s.Workforce.Engineers + s.Workforce.Supervisors
}

// ProductInSegment returns the team's launched product for a segment, or nil.
func (s *TeamState) ProductInSegment(segmentID string) *Product {
	for i := range s.Products {
		p := &s.Products[i]
		if p.SegmentID == segmentID && p.Launched {
			return p
		}
	}
	return nil
}

// SegmentCapacity is the number of units the team can produce for a segment
// this round, across all factories.
func (s *TeamState) SegmentCapacity(segmentID string) int {
	total := 0
	for i := range s.Factories {
		total += s.Factories[i].Allocation[segmentID]
	}
	return total
}

// EPS is net income per share; zero when no shares are outstanding.
func (s *TeamState) EPS() float64 {
	if s.SharesOutstanding <= 0 {
		return 0
	}
	return s.NetIncome / s.SharesOutstanding
}
