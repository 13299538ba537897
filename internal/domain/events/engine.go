package events

import (
	"fmt"
	"sort"
	"strings"

	"github.com/quarterdesk/phonesim-go/internal/domain/market"
	"github.com/quarterdesk/phonesim-go/internal/domain/shared"
)

// State is the event machine's round-to-round memory.
type State struct {
	Active  []ActiveEvent
	History []Record
}

// NewState creates an empty event state.
func NewState() *State {
	return &State{}
}

// Clone returns a typed deep copy of the event state.
func (s *State) Clone() *State {
	c := &State{
		Active:  make([]ActiveEvent, len(s.Active)),
		History: make([]Record, len(s.History)),
	}
	copy(c.History, s.History)
	for i, active := range s.Active {
		choices := make(map[string]string, len(active.ChoicesMade))
		for k, v := range active.ChoicesMade {
			choices[k] = v
		}
		active.ChoicesMade = choices
		c.Active[i] = active
	}
	return c
}

// Engine advances the event state machine once per round: expire, trigger,
// apply. Trigger draws come from the shared engine context.
type Engine struct {
	catalog []GameEvent
}

// NewEngine creates an event engine over a catalog.
func NewEngine(catalog []GameEvent) *Engine {
	return &Engine{catalog: catalog}
}

// Advance runs one round of the event machine and mutates the market state.
//
//   - expire active events whose duration has elapsed
//   - evaluate catalog triggers and activate facilitator-injected events
//   - record team choices submitted this round
//   - apply every active event's market effects
//
// The returned map carries team-scoped effects (keyed by team ID) for the
// orchestrator to apply; the engine itself never touches team state.
func (e *Engine) Advance(
	state *State,
	ms *market.MarketState,
	round int,
	teamIDs []string,
	ctx *shared.EngineContext,
	injected []CustomEvent,
	choices map[string]map[string]string,
) map[string][]Effect {
	e.expire(state, round)
	e.trigger(state, round, ctx)
	e.inject(state, round, injected)
	e.recordChoices(state, round, choices)

	teamEffects := make(map[string][]Effect)
	for i := range state.Active {
		active := &state.Active[i]
		e.applyMarket(ms, active.Event.Effects)
		e.collectTeamEffects(teamEffects, active, teamIDs)
	}
	return teamEffects
}

func (e *Engine) expire(state *State, round int) {
	kept := state.Active[:0]
	for _, active := range state.Active {
		active.RemainingRounds--
		if active.RemainingRounds <= 0 {
			state.History = append(state.History, Record{
				Round: round, EventID: active.Event.ID, Action: "expired",
			})
			continue
		}
		kept = append(kept, active)
	}
	state.Active = kept
}

func (e *Engine) trigger(state *State, round int, ctx *shared.EngineContext) {
	for _, event := range e.catalog {
		if event.TriggerProbability <= 0 || round < event.MinRound {
			continue
		}
		if e.isActive(state, event.ID) {
			continue
		}
		if !ctx.Chance(event.TriggerProbability) {
			continue
		}
		state.Active = append(state.Active, ActiveEvent{
			Event:           event,
			RemainingRounds: event.DurationRounds,
			ActivatedRound:  round,
			ChoicesMade:     make(map[string]string),
		})
		state.History = append(state.History, Record{
			Round: round, EventID: event.ID, Action: "activated", Detail: event.Name,
		})
	}
}

// inject activates facilitator events unconditionally.
func (e *Engine) inject(state *State, round int, injected []CustomEvent) {
	for i, custom := range injected {
		event := GameEvent{
			ID:             fmt.Sprintf("custom-%d-%d", round, i),
			Name:           custom.Title,
			Description:    custom.Description,
			Category:       "custom",
			DurationRounds: custom.DurationRounds,
			Effects:        custom.Effects,
			Targets:        custom.Targets,
		}
		if event.DurationRounds <= 0 {
			event.DurationRounds = 1
		}
		state.Active = append(state.Active, ActiveEvent{
			Event:           event,
			RemainingRounds: event.DurationRounds,
			ActivatedRound:  round,
			ChoicesMade:     make(map[string]string),
		})
		state.History = append(state.History, Record{
			Round: round, EventID: event.ID, Action: "activated", Detail: custom.Title,
		})
	}
}

// recordChoices iterates teams and events in sorted order so the history log
// is reproducible across runs.
func (e *Engine) recordChoices(state *State, round int, choices map[string]map[string]string) {
	for _, teamID := range sortedKeys(choices) {
		byEvent := choices[teamID]
		for _, eventID := range sortedKeys(byEvent) {
			choiceID := byEvent[eventID]
			for i := range state.Active {
				active := &state.Active[i]
				if active.Event.ID != eventID || !hasChoice(active.Event, choiceID) {
					continue
				}
				active.ChoicesMade[teamID] = choiceID
				state.History = append(state.History, Record{
					Round: round, EventID: eventID, Action: "choice",
					Detail: teamID + ":" + choiceID,
				})
			}
		}
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func hasChoice(event GameEvent, choiceID string) bool {
	for _, c := range event.Choices {
		if c.ID == choiceID {
			return true
		}
	}
	return false
}

func (e *Engine) isActive(state *State, eventID string) bool {
	for _, active := range state.Active {
		if active.Event.ID == eventID {
			return true
		}
	}
	return false
}

// applyMarket mutates market-scoped fields; team-scoped fields are skipped
// here and handled by collectTeamEffects.
func (e *Engine) applyMarket(ms *market.MarketState, effects []Effect) {
	for _, effect := range effects {
		switch {
		case effect.Field == "gdp":
			ms.Macro.GDPGrowth = combine(ms.Macro.GDPGrowth, effect)
		case effect.Field == "inflation":
			ms.Macro.Inflation = combine(ms.Macro.Inflation, effect)
		case effect.Field == "consumerConfidence":
			ms.Macro.ConsumerConfidence = combine(ms.Macro.ConsumerConfidence, effect)
		case effect.Field == "unemployment":
			ms.Macro.Unemployment = combine(ms.Macro.Unemployment, effect)
		case effect.Field == "interestRate":
			ms.Macro.InterestRate = combine(ms.Macro.InterestRate, effect)
		case effect.Field == "fxVolatility":
			ms.FX.Volatility = shared.Clamp(combine(ms.FX.Volatility, effect), 0, 1)
		case effect.Field == "priceCompetition":
			ms.Pressures.PriceCompetition = shared.Clamp(combine(ms.Pressures.PriceCompetition, effect), 0, 1)
		case effect.Field == "sustainabilityPremium":
			ms.Pressures.SustainabilityPremium = shared.Clamp(combine(ms.Pressures.SustainabilityPremium, effect), 0, 1)
		case strings.HasPrefix(effect.Field, "demand:"):
			segmentID := strings.TrimPrefix(effect.Field, "demand:")
			for id, seg := range ms.Segments {
				if segmentID == "*" || segmentID == id {
					seg.EventModifier = combine(seg.EventModifier, effect)
				}
			}
		}
	}
}

func combine(current float64, effect Effect) float64 {
	switch effect.Op {
	case OpMultiply:
		return current * effect.Value
	default:
		return current + effect.Value
	}
}

// collectTeamEffects resolves which team-scoped effect set applies to each
// team: the base effects for targeted teams, plus the effect set of the
// choice the team made, if any.
func (e *Engine) collectTeamEffects(out map[string][]Effect, active *ActiveEvent, teamIDs []string) {
	targets := active.Event.Targets
	if len(targets) == 0 {
		targets = teamIDs
	}
	for _, teamID := range targets {
		for _, effect := range active.Event.Effects {
			if isTeamField(effect.Field) {
				out[teamID] = append(out[teamID], effect)
			}
		}
		choiceID, made := active.ChoicesMade[teamID]
		if !made {
			continue
		}
		for _, choice := range active.Event.Choices {
			if choice.ID != choiceID {
				continue
			}
			out[teamID] = append(out[teamID], choice.Effects...)
		}
	}
}

func isTeamField(field string) bool {
	return field == "cash" || field == "esg" || field == "morale" ||
		strings.HasPrefix(field, "brand:")
}
