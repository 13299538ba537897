package achievements

// DefaultCatalog is the built-in achievement list. Loaded once at game start
// and treated as read-only configuration thereafter.
func DefaultCatalog() []Achievement {
	return []Achievement{
		// Finance
		{
			ID: "first-million", Name: "First Million",
			Description: "Post a round with net income over $1M.",
			Category:    "finance", Tier: TierBronze,
			Requirements: []Requirement{
				{Kind: KindThreshold, Metric: "netIncome", Compare: AtLeast, Value: 1_000_000},
			},
		},
		{
			ID: "cash-machine", Name: "Cash Machine",
			Description: "Hold net income above $2M for 3 consecutive quarters.",
			Category:    "finance", Tier: TierSilver,
			Requirements: []Requirement{
				{Kind: KindSustained, Metric: "netIncome", Compare: AtLeast, Value: 2_000_000, Rounds: 3},
			},
		},
		{
			ID: "dividend-darling", Name: "Dividend Darling",
			Description: "Pay dividends in 4 consecutive quarters.",
			Category:    "finance", Tier: TierGold,
			Requirements: []Requirement{
				{Kind: KindSustained, Metric: "dividendPaid", Compare: AtLeast, Value: 1, Rounds: 4},
			},
		},
		{
			ID: "debt-free", Name: "Debt Free",
			Description: "Carry zero debt with at least $20M cash on hand.",
			Category:    "finance", Tier: TierSilver,
			Requirements: []Requirement{
				{Kind: KindThreshold, Metric: "totalDebt", Compare: AtMost, Value: 0},
				{Kind: KindThreshold, Metric: "cash", Compare: AtLeast, Value: 20_000_000},
			},
		},
		{
			ID: "eps-elite", Name: "EPS Elite",
			Description: "Earnings per share above $0.50 for 3 consecutive quarters.",
			Category:    "finance", Tier: TierPlatinum,
			Requirements: []Requirement{
				{Kind: KindSustained, Metric: "eps", Compare: AtLeast, Value: 0.5, Rounds: 3},
			},
		},

		// R&D
		{
			ID: "lab-rats", Name: "Lab Rats",
			Description: "Reach tech level 3.",
			Category:    "rnd", Tier: TierBronze,
			Requirements: []Requirement{
				{Kind: KindThreshold, Metric: "techLevel", Compare: AtLeast, Value: 3},
			},
		},
		{
			ID: "patent-portfolio", Name: "Patent Portfolio",
			Description: "Hold 5 patents.",
			Category:    "rnd", Tier: TierSilver,
			Requirements: []Requirement{
				{Kind: KindThreshold, Metric: "patents", Compare: AtLeast, Value: 5},
			},
		},
		{
			ID: "quality-obsessed", Name: "Quality Obsessed",
			Description: "Ship a product with quality above 90.",
			Category:    "rnd", Tier: TierGold,
			Requirements: []Requirement{
				{Kind: KindThreshold, Metric: "bestQuality", Compare: AtLeast, Value: 90},
			},
		},

		// Logistics
		{
			ID: "route-scholar", Name: "Route Scholar",
			Description: "Use the shipping comparison tool before ordering.",
			Category:    "logistics", Tier: TierBronze,
			Requirements: []Requirement{
				{Kind: KindCustom, Metric: "usedRouteComparison"},
			},
		},
		{
			ID: "supply-chain-zen", Name: "Supply Chain Zen",
			Description: "Complete 3 consecutive quarters without a late shipment.",
			Category:    "logistics", Tier: TierSilver,
			Requirements: []Requirement{
				{Kind: KindSustained, Metric: "lateShipments", Compare: AtMost, Value: 0, Rounds: 3},
			},
		},

		// Results
		{
			ID: "market-leader", Name: "Market Leader",
			Description: "Capture over 40% of all units sold in a quarter.",
			Category:    "results", Tier: TierGold,
			Requirements: []Requirement{
				{Kind: KindThreshold, Metric: "marketShare", Compare: AtLeast, Value: 0.4},
			},
		},
		{
			ID: "dynasty", Name: "Dynasty",
			Description: "Hold rank 1 overall for 3 consecutive quarters.",
			Category:    "results", Tier: TierPlatinum,
			Requirements: []Requirement{
				{Kind: KindSustained, Metric: "overallRank", Compare: AtMost, Value: 1, Rounds: 3},
			},
		},

		// ESG
		{
			ID: "green-manufacturer", Name: "Green Manufacturer",
			Description: "Reach an ESG score of 75.",
			Category:    "esg", Tier: TierSilver,
			Requirements: []Requirement{
				{Kind: KindThreshold, Metric: "esg", Compare: AtLeast, Value: 75},
			},
		},

		// Secret
		{
			ID: "phoenix", Name: "Phoenix",
			Description: "Post over $1M net income the quarter after a loss.",
			Category:    "results", Tier: TierSecret,
			Requirements: []Requirement{
				{Kind: KindCustom, Metric: "recoveredFromLoss"},
			},
		},

		// Infamy
		{
			ID: "cash-crunch", Name: "Cash Crunch",
			Description: "End two consecutive quarters with negative cash.",
			Category:    "finance", Tier: TierInfamy,
			Requirements: []Requirement{
				{Kind: KindSustained, Metric: "cash", Compare: AtMost, Value: 0, Rounds: 2},
			},
		},
		{
			ID: "ghost-town", Name: "Ghost Town",
			Description: "Sell zero units across every segment in a quarter.",
			Category:    "results", Tier: TierInfamy,
			Requirements: []Requirement{
				{Kind: KindThreshold, Metric: "unitsSold", Compare: AtMost, Value: 0},
			},
		},
	}
}
