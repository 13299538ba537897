package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarterdesk/phonesim-go/internal/application/common"
	"github.com/quarterdesk/phonesim-go/internal/application/round"
	"github.com/quarterdesk/phonesim-go/internal/application/round/commands"
	"github.com/quarterdesk/phonesim-go/test/helpers"
)

// recordingLogger captures log lines for assertions.
type recordingLogger struct {
	lines []map[string]interface{}
}

func (l *recordingLogger) Log(level, message string, metadata map[string]interface{}) {
	l.lines = append(l.lines, metadata)
}

func newRoundMediator(t *testing.T) common.Mediator {
	t.Helper()
	mediator := common.NewMediator()
	handler := commands.NewProcessRoundHandler(round.NewProcessor())
	require.NoError(t, common.RegisterHandler[*commands.ProcessRoundCommand](mediator, handler))
	mediator.Use(commands.RoundLoggingMiddleware())
	return mediator
}

func TestProcessRound_DispatchReturnsOutput(t *testing.T) {
	// Arrange
	mediator := newRoundMediator(t)

	// Act
	response, err := mediator.Send(context.Background(),
		&commands.ProcessRoundCommand{Input: helpers.SeededInput(42, 1, 3)})

	// Assert
	require.NoError(t, err)
	output, ok := response.(*round.Output)
	require.True(t, ok)
	assert.Len(t, output.Results, 3)
	assert.Equal(t, 1, output.Round)
}

func TestProcessRound_LoggingMiddlewareLogsEveryTeam(t *testing.T) {
	// Arrange
	mediator := newRoundMediator(t)
	logger := &recordingLogger{}
	ctx := common.WithLogger(context.Background(), logger)

	// Act
	_, err := mediator.Send(ctx, &commands.ProcessRoundCommand{Input: helpers.SeededInput(42, 1, 3)})

	// Assert: one line per team, carrying the team's rank
	require.NoError(t, err)
	require.Len(t, logger.lines, 3)
	teams := make(map[string]bool)
	for _, line := range logger.lines {
		teams[line["team"].(string)] = true
		assert.Equal(t, 1, line["round"])
		assert.NotZero(t, line["rank"])
	}
	assert.Len(t, teams, 3)
}

func TestProcessRound_InvalidInputFailsWithoutLogging(t *testing.T) {
	// Arrange: zero seed fails validation inside the processor
	mediator := newRoundMediator(t)
	logger := &recordingLogger{}
	ctx := common.WithLogger(context.Background(), logger)

	// Act
	_, err := mediator.Send(ctx, &commands.ProcessRoundCommand{Input: helpers.SeededInput(0, 1, 2)})

	// Assert
	assert.Error(t, err)
	assert.Empty(t, logger.lines)
}
