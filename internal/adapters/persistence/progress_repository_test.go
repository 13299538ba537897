package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarterdesk/phonesim-go/internal/adapters/persistence"
	"github.com/quarterdesk/phonesim-go/internal/domain/achievements"
	"github.com/quarterdesk/phonesim-go/internal/domain/events"
	"github.com/quarterdesk/phonesim-go/test/helpers"
)

func TestProgressRepository_SaveAndFind(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormProgressRepository(db)

	progress := achievements.NewProgress("team-1")
	progress.Awarded["first-million"] = achievements.Award{
		AchievementID: "first-million", Round: 3, Points: 10,
	}
	progress.Sustained["netIncome|gte|2e+06"] = 2

	// Act
	err := repo.SaveProgress(context.Background(), "game-1", progress)
	require.NoError(t, err)
	found, err := repo.FindProgress(context.Background(), "game-1", "team-1")

	// Assert
	require.NoError(t, err)
	assert.True(t, found.Has("first-million"))
	assert.Equal(t, 2, found.Sustained["netIncome|gte|2e+06"])
	assert.Equal(t, 10, found.Score())
}

func TestProgressRepository_MissingRowIsEmptyProgress(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormProgressRepository(db)

	// Act
	found, err := repo.FindProgress(context.Background(), "game-1", "team-9")

	// Assert: a fresh team simply has no badges yet
	require.NoError(t, err)
	assert.Equal(t, "team-9", found.TeamID)
	assert.Empty(t, found.Awarded)
}

func TestProgressRepository_EventStateRoundTrip(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormProgressRepository(db)

	state := events.NewState()
	state.Active = append(state.Active, events.ActiveEvent{
		Event:           events.GameEvent{ID: "recession", Name: "Economic Recession"},
		RemainingRounds: 2,
		ActivatedRound:  4,
		ChoicesMade:     map[string]string{},
	})
	state.History = append(state.History, events.Record{
		Round: 4, EventID: "recession", Action: "activated",
	})

	// Act
	err := repo.SaveEventState(context.Background(), "game-1", state)
	require.NoError(t, err)
	found, err := repo.FindEventState(context.Background(), "game-1")

	// Assert
	require.NoError(t, err)
	require.Len(t, found.Active, 1)
	assert.Equal(t, "recession", found.Active[0].Event.ID)
	assert.Equal(t, 2, found.Active[0].RemainingRounds)
	require.Len(t, found.History, 1)
	assert.Equal(t, "activated", found.History[0].Action)
}

func TestProgressRepository_MissingEventStateIsEmpty(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormProgressRepository(db)

	found, err := repo.FindEventState(context.Background(), "nope")

	require.NoError(t, err)
	assert.Empty(t, found.Active)
}
