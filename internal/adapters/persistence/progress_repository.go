package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/quarterdesk/phonesim-go/internal/domain/achievements"
	"github.com/quarterdesk/phonesim-go/internal/domain/events"
)

// GormProgressRepository persists achievement progress and event state.
type GormProgressRepository struct {
	db *gorm.DB
}

// NewGormProgressRepository creates a new GORM progress repository
func NewGormProgressRepository(db *gorm.DB) *GormProgressRepository {
	return &GormProgressRepository{db: db}
}

// SaveProgress upserts one team's achievement progress.
func (r *GormProgressRepository) SaveProgress(ctx context.Context, gameID string, progress *achievements.Progress) error {
	progressJSON, err := json.Marshal(progress)
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %w", err)
	}
	model := AchievementProgressModel{
		GameID:   gameID,
		TeamID:   progress.TeamID,
		Progress: string(progressJSON),
	}
	if result := r.db.WithContext(ctx).Save(&model); result.Error != nil {
		return fmt.Errorf("failed to save progress: %w", result.Error)
	}
	return nil
}

// FindProgress retrieves one team's achievement progress; a missing row is
// fresh empty progress, not an error.
func (r *GormProgressRepository) FindProgress(ctx context.Context, gameID, teamID string) (*achievements.Progress, error) {
	var model AchievementProgressModel
	result := r.db.WithContext(ctx).
		Where("game_id = ? AND team_id = ?", gameID, teamID).
		First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return achievements.NewProgress(teamID), nil
		}
		return nil, fmt.Errorf("failed to find progress: %w", result.Error)
	}

	var progress achievements.Progress
	if err := json.Unmarshal([]byte(model.Progress), &progress); err != nil {
		return nil, fmt.Errorf("failed to unmarshal progress: %w", err)
	}
	return &progress, nil
}

// SaveEventState upserts a game's event state.
func (r *GormProgressRepository) SaveEventState(ctx context.Context, gameID string, state *events.State) error {
	stateJSON, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal event state: %w", err)
	}
	model := EventStateModel{GameID: gameID, State: string(stateJSON)}
	if result := r.db.WithContext(ctx).Save(&model); result.Error != nil {
		return fmt.Errorf("failed to save event state: %w", result.Error)
	}
	return nil
}

// FindEventState retrieves a game's event state; a missing row is an empty
// state machine.
func (r *GormProgressRepository) FindEventState(ctx context.Context, gameID string) (*events.State, error) {
	var model EventStateModel
	result := r.db.WithContext(ctx).Where("game_id = ?", gameID).First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return events.NewState(), nil
		}
		return nil, fmt.Errorf("failed to find event state: %w", result.Error)
	}

	var state events.State
	if err := json.Unmarshal([]byte(model.State), &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event state: %w", err)
	}
	return &state, nil
}
