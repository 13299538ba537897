package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/quarterdesk/phonesim-go/internal/domain/company"
)

// GormTeamStateRepository implements team state persistence using GORM
type GormTeamStateRepository struct {
	db *gorm.DB
}

// NewGormTeamStateRepository creates a new GORM team state repository
func NewGormTeamStateRepository(db *gorm.DB) *GormTeamStateRepository {
	return &GormTeamStateRepository{db: db}
}

// Save upserts one team's state after a round.
func (r *GormTeamStateRepository) Save(ctx context.Context, gameID string, round int, state *company.TeamState) error {
	stateJSON, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal team state: %w", err)
	}
	model := TeamStateModel{
		GameID:    gameID,
		TeamID:    state.TeamID,
		Round:     round,
		State:     string(stateJSON),
		UpdatedAt: time.Now().UTC(),
	}
	result := r.db.WithContext(ctx).Save(&model)
	if result.Error != nil {
		return fmt.Errorf("failed to save team state: %w", result.Error)
	}
	return nil
}

// Find retrieves one team's current state.
func (r *GormTeamStateRepository) Find(ctx context.Context, gameID, teamID string) (*company.TeamState, error) {
	var model TeamStateModel
	result := r.db.WithContext(ctx).
		Where("game_id = ? AND team_id = ?", gameID, teamID).
		First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("team state not found: %s/%s", gameID, teamID)
		}
		return nil, fmt.Errorf("failed to find team state: %w", result.Error)
	}
	return unmarshalTeamState(model.State)
}

// ListByGame retrieves every team's current state for a game, ordered by
// team ID so round processing sees a stable order.
func (r *GormTeamStateRepository) ListByGame(ctx context.Context, gameID string) ([]*company.TeamState, error) {
	var models []TeamStateModel
	result := r.db.WithContext(ctx).
		Where("game_id = ?", gameID).
		Order("team_id ASC").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list team states: %w", result.Error)
	}

	states := make([]*company.TeamState, 0, len(models))
	for _, model := range models {
		state, err := unmarshalTeamState(model.State)
		if err != nil {
			return nil, err
		}
		states = append(states, state)
	}
	return states, nil
}

func unmarshalTeamState(raw string) (*company.TeamState, error) {
	var state company.TeamState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal team state: %w", err)
	}
	if err := state.Validate(); err != nil {
		return nil, fmt.Errorf("persisted team state invalid: %w", err)
	}
	return &state, nil
}
