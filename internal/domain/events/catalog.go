package events

// DefaultCatalog is the built-in set of market-wide events. Probabilities are
// per-round and deliberately low; a 10-round game typically sees two or three.
func DefaultCatalog() []GameEvent {
	return []GameEvent{
		{
			ID:                 "recession",
			Name:               "Economic Recession",
			Description:        "Consumer spending contracts across all segments.",
			Category:           "economy",
			TriggerProbability: 0.06,
			MinRound:           3,
			DurationRounds:     3,
			Effects: []Effect{
				{Field: "gdp", Op: OpAdd, Value: -2},
				{Field: "consumerConfidence", Op: OpAdd, Value: -15},
				{Field: "demand:*", Op: OpMultiply, Value: 0.85},
			},
		},
		{
			ID:                 "consumer-boom",
			Name:               "Consumer Boom",
			Description:        "Upgrade cycles accelerate; premium segments surge.",
			Category:           "economy",
			TriggerProbability: 0.06,
			MinRound:           2,
			DurationRounds:     2,
			Effects: []Effect{
				{Field: "consumerConfidence", Op: OpAdd, Value: 10},
				{Field: "demand:enthusiast", Op: OpMultiply, Value: 1.2},
				{Field: "demand:professional", Op: OpMultiply, Value: 1.15},
			},
		},
		{
			ID:                 "component-shortage",
			Name:               "Component Shortage",
			Description:        "Chip supply tightens: production costs rise everywhere.",
			Category:           "supply",
			TriggerProbability: 0.08,
			MinRound:           2,
			DurationRounds:     2,
			Effects: []Effect{
				{Field: "inflation", Op: OpAdd, Value: 1.5},
				{Field: "priceCompetition", Op: OpAdd, Value: -0.1},
			},
		},
		{
			ID:                 "green-wave",
			Name:               "Sustainability Wave",
			Description:        "Buyers start rewarding sustainable manufacturers.",
			Category:           "society",
			TriggerProbability: 0.05,
			MinRound:           3,
			DurationRounds:     4,
			Effects: []Effect{
				{Field: "sustainabilityPremium", Op: OpAdd, Value: 0.2},
			},
		},
		{
			ID:                 "fx-shock",
			Name:               "Currency Shock",
			Description:        "Exchange-rate volatility spikes; import costs wobble.",
			Category:           "economy",
			TriggerProbability: 0.05,
			MinRound:           2,
			DurationRounds:     2,
			Effects: []Effect{
				{Field: "fxVolatility", Op: OpAdd, Value: 0.2},
				{Field: "interestRate", Op: OpAdd, Value: 0.5},
			},
		},
		{
			ID:                 "tariff-dispute",
			Name:               "Tariff Dispute",
			Description:        "New import tariffs: absorb the cost or pass it on.",
			Category:           "policy",
			TriggerProbability: 0.04,
			MinRound:           4,
			DurationRounds:     3,
			Effects: []Effect{
				{Field: "consumerConfidence", Op: OpAdd, Value: -5},
			},
			Choices: []Choice{
				{
					ID:    "absorb",
					Label: "Absorb tariffs (costs rise, brand protected)",
					Effects: []Effect{
						{Field: "cash", Op: OpAdd, Value: -500_000},
					},
				},
				{
					ID:    "pass-on",
					Label: "Pass tariffs to customers (brand suffers)",
					Effects: []Effect{
						{Field: "brand:*", Op: OpMultiply, Value: 0.95},
					},
				},
			},
		},
	}
}
