package config

import "time"

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Database defaults: local sqlite keeps workshops zero-setup
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Path == "" && cfg.Database.Type == "sqlite" {
		cfg.Database.Path = "phonesim.db"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "phonesim"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "phonesim"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 25
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 5
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = 5 * time.Minute
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}

	// Engine calibration defaults, matched to the shipped market weights
	if cfg.Engine.PriceWeight == 0 {
		cfg.Engine.PriceWeight = 0.25
	}
	if cfg.Engine.QualityWeight == 0 {
		cfg.Engine.QualityWeight = 0.25
	}
	if cfg.Engine.FeaturesWeight == 0 {
		cfg.Engine.FeaturesWeight = 0.15
	}
	if cfg.Engine.BrandWeight == 0 {
		cfg.Engine.BrandWeight = 0.20
	}
	if cfg.Engine.AdWeight == 0 {
		cfg.Engine.AdWeight = 0.10
	}
	if cfg.Engine.ESGWeight == 0 {
		cfg.Engine.ESGWeight = 0.05
	}
	if cfg.Engine.Gamma == 0 {
		cfg.Engine.Gamma = 1.5
	}
	if cfg.Engine.AdSaturation == 0 {
		cfg.Engine.AdSaturation = 2_000_000
	}

	// Game defaults
	if cfg.Game.Preset == "" {
		cfg.Game.Preset = "standard"
	}
	if cfg.Game.Rounds == 0 {
		cfg.Game.Rounds = 10
	}
}
