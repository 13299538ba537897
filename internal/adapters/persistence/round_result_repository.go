package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/quarterdesk/phonesim-go/internal/application/round"
)

// GormRoundResultRepository implements append-only round history using GORM
type GormRoundResultRepository struct {
	db *gorm.DB
}

// NewGormRoundResultRepository creates a new GORM round result repository
func NewGormRoundResultRepository(db *gorm.DB) *GormRoundResultRepository {
	return &GormRoundResultRepository{db: db}
}

// Append stores every team's result for a round. History is append-only;
// existing rows are never updated.
func (r *GormRoundResultRepository) Append(ctx context.Context, gameID string, output *round.Output) error {
	for _, teamResult := range output.Results {
		resultJSON, err := json.Marshal(teamResult)
		if err != nil {
			return fmt.Errorf("failed to marshal round result: %w", err)
		}
		model := RoundResultModel{
			GameID: gameID,
			TeamID: teamResult.TeamID,
			Round:  teamResult.Round,
			Result: string(resultJSON),
		}
		if result := r.db.WithContext(ctx).Create(&model); result.Error != nil {
			return fmt.Errorf("failed to append round result: %w", result.Error)
		}
	}
	return nil
}

// ListByTeam retrieves a team's full history in round order.
func (r *GormRoundResultRepository) ListByTeam(ctx context.Context, gameID, teamID string) ([]round.TeamRoundResult, error) {
	var models []RoundResultModel
	result := r.db.WithContext(ctx).
		Where("game_id = ? AND team_id = ?", gameID, teamID).
		Order("round ASC").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list round results: %w", result.Error)
	}

	results := make([]round.TeamRoundResult, 0, len(models))
	for _, model := range models {
		var teamResult round.TeamRoundResult
		if err := json.Unmarshal([]byte(model.Result), &teamResult); err != nil {
			return nil, fmt.Errorf("failed to unmarshal round result: %w", err)
		}
		results = append(results, teamResult)
	}
	return results, nil
}
