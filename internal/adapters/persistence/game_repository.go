package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/quarterdesk/phonesim-go/internal/domain/market"
)

// Game is the persisted game header.
type Game struct {
	ID           string
	Preset       string
	Seed         int64
	CurrentRound int
	MarketState  *market.MarketState
}

// GormGameRepository implements game persistence using GORM
type GormGameRepository struct {
	db *gorm.DB
}

// NewGormGameRepository creates a new GORM game repository
func NewGormGameRepository(db *gorm.DB) *GormGameRepository {
	return &GormGameRepository{db: db}
}

// Save upserts the game header and its market state.
func (r *GormGameRepository) Save(ctx context.Context, game *Game) error {
	marketJSON, err := json.Marshal(game.MarketState)
	if err != nil {
		return fmt.Errorf("failed to marshal market state: %w", err)
	}
	model := GameModel{
		ID:           game.ID,
		Preset:       game.Preset,
		Seed:         game.Seed,
		CurrentRound: game.CurrentRound,
		CreatedAt:    time.Now().UTC(),
		MarketState:  string(marketJSON),
	}
	result := r.db.WithContext(ctx).Save(&model)
	if result.Error != nil {
		return fmt.Errorf("failed to save game: %w", result.Error)
	}
	return nil
}

// FindByID retrieves a game by ID
func (r *GormGameRepository) FindByID(ctx context.Context, gameID string) (*Game, error) {
	var model GameModel
	result := r.db.WithContext(ctx).Where("id = ?", gameID).First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("game not found: %s", gameID)
		}
		return nil, fmt.Errorf("failed to find game: %w", result.Error)
	}

	var marketState market.MarketState
	if err := json.Unmarshal([]byte(model.MarketState), &marketState); err != nil {
		return nil, fmt.Errorf("failed to unmarshal market state: %w", err)
	}

	return &Game{
		ID:           model.ID,
		Preset:       model.Preset,
		Seed:         model.Seed,
		CurrentRound: model.CurrentRound,
		MarketState:  &marketState,
	}, nil
}
