package config

// EngineConfig holds round-engine calibration. Everything here is data so
// facilitators can re-tune the market without a rebuild.
type EngineConfig struct {
	// Competitiveness weights; must sum to roughly 1 but are re-normalized
	// by the market engine
	PriceWeight    float64 `mapstructure:"price_weight" validate:"gte=0,lte=1"`
	QualityWeight  float64 `mapstructure:"quality_weight" validate:"gte=0,lte=1"`
	FeaturesWeight float64 `mapstructure:"features_weight" validate:"gte=0,lte=1"`
	BrandWeight    float64 `mapstructure:"brand_weight" validate:"gte=0,lte=1"`
	AdWeight       float64 `mapstructure:"ad_weight" validate:"gte=0,lte=1"`
	ESGWeight      float64 `mapstructure:"esg_weight" validate:"gte=0,lte=1"`

	// Gamma sharpens share-of-voice allocation; 1 = purely proportional
	Gamma float64 `mapstructure:"gamma" validate:"gte=1,lte=4"`

	// AdSaturation is the per-segment spend at which advertising reaches
	// half effect
	AdSaturation float64 `mapstructure:"ad_saturation" validate:"gt=0"`
}

// GameConfig holds per-game parameters.
type GameConfig struct {
	// Difficulty preset: easy, standard, hard
	Preset string `mapstructure:"preset" validate:"required,oneof=easy standard hard"`

	// Seed for the game's random context; 0 means the caller must supply one
	Seed int64 `mapstructure:"seed"`

	// Rounds in a full game
	Rounds int `mapstructure:"rounds" validate:"min=1,max=40"`
}
