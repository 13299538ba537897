package persistence

import "time"

// GameModel represents the games table
type GameModel struct {
	ID           string    `gorm:"column:id;primaryKey"`
	Preset       string    `gorm:"column:preset;not null"`
	Seed         int64     `gorm:"column:seed;not null"`
	CurrentRound int       `gorm:"column:current_round;not null;default:0"`
	CreatedAt    time.Time `gorm:"column:created_at;not null"`
	MarketState  string    `gorm:"column:market_state;type:text"` // JSON as text
}

func (GameModel) TableName() string {
	return "games"
}

// TeamStateModel represents the team_states table: one row per team per game,
// overwritten as rounds advance. The aggregate is stored as JSON; the engine
// owns its shape and persistence only moves it.
type TeamStateModel struct {
	GameID    string    `gorm:"column:game_id;primaryKey"`
	TeamID    string    `gorm:"column:team_id;primaryKey"`
	Round     int       `gorm:"column:round;not null"`
	State     string    `gorm:"column:state;type:text;not null"` // JSON as text
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

func (TeamStateModel) TableName() string {
	return "team_states"
}

// RoundResultModel represents the round_results table: append-only history,
// one row per team per round.
type RoundResultModel struct {
	ID     uint   `gorm:"column:id;primaryKey;autoIncrement"`
	GameID string `gorm:"column:game_id;index:idx_round_results_game_round;not null"`
	TeamID string `gorm:"column:team_id;not null"`
	Round  int    `gorm:"column:round;index:idx_round_results_game_round;not null"`
	Result string `gorm:"column:result;type:text;not null"` // JSON as text
}

func (RoundResultModel) TableName() string {
	return "round_results"
}

// AchievementProgressModel represents the achievement_progress table.
type AchievementProgressModel struct {
	GameID   string `gorm:"column:game_id;primaryKey"`
	TeamID   string `gorm:"column:team_id;primaryKey"`
	Progress string `gorm:"column:progress;type:text;not null"` // JSON as text
}

func (AchievementProgressModel) TableName() string {
	return "achievement_progress"
}

// EventStateModel represents the event_states table: one row per game.
type EventStateModel struct {
	GameID string `gorm:"column:game_id;primaryKey"`
	State  string `gorm:"column:state;type:text;not null"` // JSON as text
}

func (EventStateModel) TableName() string {
	return "event_states"
}
