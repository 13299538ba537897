package modules

// Decisions is one team's immutable submission for a round: one sub-bundle
// per module, never mutated after submission.
type Decisions struct {
	Factory   FactoryDecisions   `validate:"required"`
	HR        HRDecisions        `validate:"required"`
	RnD       RnDDecisions       `validate:"required"`
	Marketing MarketingDecisions `validate:"required"`
	Finance   FinanceDecisions   `validate:"required"`

	// EventChoices maps active event ID to the chosen option ID
	EventChoices map[string]string
}

// FactoryDecisions covers production planning and plant investment.
type FactoryDecisions struct {
	// Production maps segment ID to requested units
	Production map[string]int `validate:"omitempty,dive,gte=0"`

	EfficiencyInvestment float64 `validate:"gte=0"`
	GreenInvestment      float64 `validate:"gte=0"`

	MaterialOrders []MaterialOrder `validate:"omitempty,dive"`
}

// MaterialOrder is one component shipment request priced by the logistics
// engine during factory resolution.
type MaterialOrder struct {
	From         string  `validate:"required"`
	To           string  `validate:"required"`
	WeightKg     float64 `validate:"gt=0"`
	VolumeM3     float64 `validate:"gte=0"`
	Budget       float64 `validate:"gte=0"`
	DeadlineDays float64 `validate:"gte=0"`
	Rush         bool

	// UsedComparison marks that the team ran the route comparison tool
	// before ordering; feeds the logistics achievements.
	UsedComparison bool
}

// HRDecisions covers headcount, pay, and training.
type HRDecisions struct {
	// Negative hire counts are layoffs
	HireWorkers     int
	HireEngineers   int
	HireSupervisors int

	TrainingBudget   float64 `validate:"gte=0"`
	SalaryMultiplier float64 `validate:"gte=0.5,lte=3"`
}

// RnDDecisions covers research budget, product work, and launches.
type RnDDecisions struct {
	Budget float64 `validate:"gte=0"`

	Upgrades    []ProductUpgrade `validate:"omitempty,dive"`
	NewProducts []NewProduct     `validate:"omitempty,dive"`
}

// ProductUpgrade spends on an existing model.
type ProductUpgrade struct {
	ProductID     string  `validate:"required"`
	QualityBudget float64 `validate:"gte=0"`
	FeatureBudget float64 `validate:"gte=0"`
}

// NewProduct launches a model into a segment.
type NewProduct struct {
	Name      string  `validate:"required"`
	SegmentID string  `validate:"required"`
	Price     float64 `validate:"gt=0"`
}

// MarketingDecisions covers advertising and pricing.
type MarketingDecisions struct {
	// AdBudgets maps segment ID to this round's advertising spend
	AdBudgets map[string]float64 `validate:"omitempty,dive,gte=0"`

	// PriceChanges maps product ID to a new price
	PriceChanges map[string]float64 `validate:"omitempty,dive,gt=0"`
}

// FinanceDecisions covers debt, dividends, and buybacks. Finance resolves
// last so interest and dividend math sees the round's final cash position.
type FinanceDecisions struct {
	NewDebt          float64 `validate:"gte=0"`
	RepayDebt        float64 `validate:"gte=0"`
	DividendPerShare float64 `validate:"gte=0"`
	BuybackBudget    float64 `validate:"gte=0"`
}
