package events_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarterdesk/phonesim-go/internal/domain/events"
	"github.com/quarterdesk/phonesim-go/internal/domain/market"
	"github.com/quarterdesk/phonesim-go/internal/domain/shared"
)

var teamIDs = []string{"team-1", "team-2"}

func recessionEvent() events.CustomEvent {
	return events.CustomEvent{
		Title:          "Sudden Recession",
		DurationRounds: 2,
		Effects: []events.Effect{
			{Field: "gdp", Op: events.OpAdd, Value: -2},
			{Field: "consumerConfidence", Op: events.OpAdd, Value: -15},
			{Field: "demand:*", Op: events.OpMultiply, Value: 0.85},
		},
	}
}

func TestAdvance_InjectedRecessionHitsMarket(t *testing.T) {
	// Arrange
	engine := events.NewEngine(nil)
	state := events.NewState()
	ms := market.DefaultMarketState()
	ctx := shared.NewEngineContext(1)

	// Act
	teamEffects := engine.Advance(state, ms, 1, teamIDs, ctx,
		[]events.CustomEvent{recessionEvent()}, nil)

	// Assert: market-scoped effects land on the market, none on teams
	assert.Empty(t, teamEffects)
	assert.InDelta(t, 0.4, ms.Macro.GDPGrowth, 1e-9)
	assert.Equal(t, 85.0, ms.Macro.ConsumerConfidence)
	for _, seg := range ms.Segments {
		assert.Equal(t, 0.85, seg.EventModifier)
	}
	require.Len(t, state.Active, 1)
	require.Len(t, state.History, 1)
	assert.Equal(t, "activated", state.History[0].Action)
}

func TestAdvance_EventExpiresAfterDuration(t *testing.T) {
	// Arrange: duration 2 applies in the activation round and one more
	engine := events.NewEngine(nil)
	state := events.NewState()
	ctx := shared.NewEngineContext(1)

	// Act: round 1 activates, round 2 still active, round 3 expired
	engine.Advance(state, market.DefaultMarketState(), 1, teamIDs, ctx,
		[]events.CustomEvent{recessionEvent()}, nil)
	require.Len(t, state.Active, 1)

	round2 := market.DefaultMarketState()
	engine.Advance(state, round2, 2, teamIDs, ctx, nil, nil)
	require.Len(t, state.Active, 1)
	assert.Equal(t, 0.85, round2.Segments[market.SegmentBudget].EventModifier)

	round3 := market.DefaultMarketState()
	engine.Advance(state, round3, 3, teamIDs, ctx, nil, nil)

	// Assert
	assert.Empty(t, state.Active)
	assert.Equal(t, 1.0, round3.Segments[market.SegmentBudget].EventModifier)
	last := state.History[len(state.History)-1]
	assert.Equal(t, "expired", last.Action)
}

func TestAdvance_TriggerRespectsMinRound(t *testing.T) {
	// Arrange: a certain trigger that is gated to round 5
	catalog := []events.GameEvent{{
		ID: "late-shock", Name: "Late Shock",
		TriggerProbability: 1, MinRound: 5, DurationRounds: 1,
	}}
	engine := events.NewEngine(catalog)
	state := events.NewState()
	ctx := shared.NewEngineContext(1)

	// Act & Assert
	engine.Advance(state, market.DefaultMarketState(), 4, teamIDs, ctx, nil, nil)
	assert.Empty(t, state.Active)

	engine.Advance(state, market.DefaultMarketState(), 5, teamIDs, ctx, nil, nil)
	assert.Len(t, state.Active, 1)
}

func TestAdvance_ActiveEventDoesNotRetrigger(t *testing.T) {
	// Arrange
	catalog := []events.GameEvent{{
		ID: "storm", Name: "Storm",
		TriggerProbability: 1, DurationRounds: 3,
	}}
	engine := events.NewEngine(catalog)
	state := events.NewState()
	ctx := shared.NewEngineContext(1)

	// Act
	engine.Advance(state, market.DefaultMarketState(), 1, teamIDs, ctx, nil, nil)
	engine.Advance(state, market.DefaultMarketState(), 2, teamIDs, ctx, nil, nil)

	// Assert
	assert.Len(t, state.Active, 1)
}

func TestAdvance_TeamScopedEffectsAreReturnedNotApplied(t *testing.T) {
	// Arrange
	engine := events.NewEngine(nil)
	state := events.NewState()
	ms := market.DefaultMarketState()
	ctx := shared.NewEngineContext(1)
	custom := events.CustomEvent{
		Title:          "Targeted Fine",
		DurationRounds: 1,
		Effects: []events.Effect{
			{Field: "cash", Op: events.OpAdd, Value: -500_000},
		},
		Targets: []string{"team-2"},
	}

	// Act
	teamEffects := engine.Advance(state, ms, 1, teamIDs, ctx,
		[]events.CustomEvent{custom}, nil)

	// Assert: only the targeted team gets the effect, the market is untouched
	require.Contains(t, teamEffects, "team-2")
	assert.NotContains(t, teamEffects, "team-1")
	require.Len(t, teamEffects["team-2"], 1)
	assert.Equal(t, "cash", teamEffects["team-2"][0].Field)
	assert.Equal(t, 100.0, ms.Macro.ConsumerConfidence)
}

func TestAdvance_ChoiceSelectsEffectSet(t *testing.T) {
	// Arrange: a triggered event with two options
	catalog := []events.GameEvent{{
		ID: "tariffs", Name: "Tariffs",
		TriggerProbability: 1, DurationRounds: 3,
		Choices: []events.Choice{
			{ID: "absorb", Effects: []events.Effect{{Field: "cash", Op: events.OpAdd, Value: -500_000}}},
			{ID: "pass-on", Effects: []events.Effect{{Field: "brand:*", Op: events.OpMultiply, Value: 0.95}}},
		},
	}}
	engine := events.NewEngine(catalog)
	state := events.NewState()
	ctx := shared.NewEngineContext(1)
	engine.Advance(state, market.DefaultMarketState(), 1, teamIDs, ctx, nil, nil)

	// Act: team-1 absorbs, team-2 never chooses
	choices := map[string]map[string]string{
		"team-1": {"tariffs": "absorb"},
	}
	teamEffects := engine.Advance(state, market.DefaultMarketState(), 2, teamIDs, ctx, nil, choices)

	// Assert
	require.Contains(t, teamEffects, "team-1")
	found := false
	for _, effect := range teamEffects["team-1"] {
		if effect.Field == "cash" && effect.Value == -500_000 {
			found = true
		}
	}
	assert.True(t, found, "absorb choice effect missing for team-1")
	assert.NotContains(t, teamEffects, "team-2")
}

func TestAdvance_UnknownChoiceIsIgnored(t *testing.T) {
	// Arrange
	catalog := []events.GameEvent{{
		ID: "tariffs", Name: "Tariffs",
		TriggerProbability: 1, DurationRounds: 3,
		Choices: []events.Choice{
			{ID: "absorb", Effects: []events.Effect{{Field: "cash", Op: events.OpAdd, Value: -500_000}}},
		},
	}}
	engine := events.NewEngine(catalog)
	state := events.NewState()
	ctx := shared.NewEngineContext(1)
	engine.Advance(state, market.DefaultMarketState(), 1, teamIDs, ctx, nil, nil)

	// Act
	choices := map[string]map[string]string{
		"team-1": {"tariffs": "does-not-exist"},
	}
	teamEffects := engine.Advance(state, market.DefaultMarketState(), 2, teamIDs, ctx, nil, choices)

	// Assert
	assert.NotContains(t, teamEffects, "team-1")
}

func TestState_CloneIsDeep(t *testing.T) {
	// Arrange
	state := events.NewState()
	engine := events.NewEngine(nil)
	ctx := shared.NewEngineContext(1)
	engine.Advance(state, market.DefaultMarketState(), 1, teamIDs, ctx,
		[]events.CustomEvent{recessionEvent()}, nil)

	// Act
	clone := state.Clone()
	clone.Active[0].RemainingRounds = 99
	clone.Active[0].ChoicesMade["team-1"] = "x"
	clone.History = append(clone.History, events.Record{Action: "choice"})

	// Assert
	assert.Equal(t, 2, state.Active[0].RemainingRounds)
	assert.Empty(t, state.Active[0].ChoicesMade)
	assert.Len(t, state.History, 1)
}
