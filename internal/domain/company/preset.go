package company

import "fmt"

// Preset parameterizes a starting company. Workshops pick a difficulty and
// every team in the game starts from the same preset.
type Preset struct {
	Name             string
	StartingCash     float64
	Workers          int
	Engineers        int
	Supervisors      int
	Machines         int
	UnitsPerMachine  int
	StartingSegments []string
	StartingQuality  float64
	StartingPrice    map[string]float64
	Shares           float64
}

// Difficulty presets. Harder presets start with less cash and fewer launched
// products, leaving more of the market to fight for.
var presets = map[string]Preset{
	"easy": {
		Name:             "easy",
		StartingCash:     25_000_000,
		Workers:          220,
		Engineers:        45,
		Supervisors:      18,
		Machines:         24,
		UnitsPerMachine:  5000,
		StartingSegments: []string{"budget", "general"},
		StartingQuality:  55,
		StartingPrice:    map[string]float64{"budget": 180, "general": 420},
		Shares:           10_000_000,
	},
	"standard": {
		Name:             "standard",
		StartingCash:     15_000_000,
		Workers:          160,
		Engineers:        30,
		Supervisors:      12,
		Machines:         18,
		UnitsPerMachine:  5000,
		StartingSegments: []string{"budget"},
		StartingQuality:  48,
		StartingPrice:    map[string]float64{"budget": 170},
		Shares:           10_000_000,
	},
	"hard": {
		Name:             "hard",
		StartingCash:     9_000_000,
		Workers:          120,
		Engineers:        20,
		Supervisors:      8,
		Machines:         12,
		UnitsPerMachine:  5000,
		StartingSegments: []string{"budget"},
		StartingQuality:  42,
		StartingPrice:    map[string]float64{"budget": 160},
		Shares:           10_000_000,
	},
}

// PresetByName looks up a difficulty preset.
func PresetByName(name string) (Preset, error) {
	p, ok := presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("unknown preset %q: %w", name, ErrUnknownPreset)
	}
	return p, nil
}

// NewTeamState builds a starting company from a preset.
func NewTeamState(teamID string, preset Preset) *TeamState {
	state := &TeamState{
		TeamID:            teamID,
		Cash:              preset.StartingCash,
		SharesOutstanding: preset.Shares,
		ESGScore:          40,
		TechLevel:         1,
		BrandValue:        make(map[string]float64),
		ZeroAdStreak:      make(map[string]int),
		Workforce: Workforce{
			Workers:          preset.Workers,
			Engineers:        preset.Engineers,
			Supervisors:      preset.Supervisors,
			Morale:           70,
			TrainingLevel:    1,
			SalaryMultiplier: 1.0,
		},
		Factories: []Factory{
			{
				ID:              teamID + "-plant-1",
				Region:          "east-asia",
				Machines:        preset.Machines,
				UnitsPerMachine: preset.UnitsPerMachine,
				Efficiency:      1.0,
				GreenRating:     30,
				Allocation:      make(map[string]int),
			},
		},
	}

	for i, segmentID := range preset.StartingSegments {
		state.BrandValue[segmentID] = 30
		state.Products = append(state.Products, Product{
			ID:        fmt.Sprintf("%s-model-%d", teamID, i+1),
			Name:      fmt.Sprintf("Model %d", i+1),
			SegmentID: segmentID,
			Quality:   preset.StartingQuality,
			Features:  preset.StartingQuality - 5,
			Price:     preset.StartingPrice[segmentID],
			Launched:  true,
		})
	}

	return state
}
