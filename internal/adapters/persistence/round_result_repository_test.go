package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarterdesk/phonesim-go/internal/adapters/persistence"
	"github.com/quarterdesk/phonesim-go/internal/application/round"
	"github.com/quarterdesk/phonesim-go/test/helpers"
)

func playRound(t *testing.T, roundNumber int) *round.Output {
	t.Helper()
	processor := round.NewProcessor()
	out, err := processor.Process(helpers.SeededInput(42, roundNumber, 2))
	require.NoError(t, err)
	return out
}

func TestRoundResultRepository_AppendAndList(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormRoundResultRepository(db)

	// Act: two rounds of history
	require.NoError(t, repo.Append(context.Background(), "game-1", playRound(t, 1)))
	require.NoError(t, repo.Append(context.Background(), "game-1", playRound(t, 2)))

	results, err := repo.ListByTeam(context.Background(), "game-1", "team-1")

	// Assert: full history in round order
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, 1, results[0].Round)
	assert.Equal(t, 2, results[1].Round)
	assert.Equal(t, "team-1", results[0].TeamID)
	assert.Len(t, results[0].ModuleResults, 5)
	assert.NotNil(t, results[0].State)
}

func TestRoundResultRepository_ListOtherGameIsEmpty(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormRoundResultRepository(db)
	require.NoError(t, repo.Append(context.Background(), "game-1", playRound(t, 1)))

	// Act
	results, err := repo.ListByTeam(context.Background(), "game-2", "team-1")

	// Assert
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestGameRepository_SaveAndFind(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormGameRepository(db)
	out := playRound(t, 1)

	game := &persistence.Game{
		ID:           "game-1",
		Preset:       "standard",
		Seed:         42,
		CurrentRound: 1,
		MarketState:  out.MarketState,
	}

	// Act
	err := repo.Save(context.Background(), game)
	require.NoError(t, err)
	found, err := repo.FindByID(context.Background(), "game-1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(42), found.Seed)
	assert.Equal(t, "standard", found.Preset)
	require.NotNil(t, found.MarketState)
	assert.InDelta(t, out.MarketState.Segments["budget"].TotalUnits,
		found.MarketState.Segments["budget"].TotalUnits, 1e-6)
}

func TestGameRepository_NotFound(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormGameRepository(db)

	_, err := repo.FindByID(context.Background(), "ghost")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "game not found")
}
