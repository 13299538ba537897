package commands

import (
	"context"
	"fmt"

	"github.com/quarterdesk/phonesim-go/internal/application/common"
	"github.com/quarterdesk/phonesim-go/internal/application/round"
)

// ProcessRoundCommand asks the engine to resolve one round for one game.
// Submission coordination guarantees no two commands for the same game run
// concurrently; the handler itself is synchronous and side-effect free.
type ProcessRoundCommand struct {
	Input round.Input
}

// ProcessRoundHandler dispatches the command to the round processor.
type ProcessRoundHandler struct {
	processor *round.Processor
}

// NewProcessRoundHandler creates the handler.
func NewProcessRoundHandler(processor *round.Processor) *ProcessRoundHandler {
	return &ProcessRoundHandler{processor: processor}
}

// Handle resolves the round.
func (h *ProcessRoundHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*ProcessRoundCommand)
	if !ok {
		return nil, fmt.Errorf("unexpected request type %T", request)
	}

	output, err := h.processor.Process(cmd.Input)
	if err != nil {
		return nil, fmt.Errorf("round %d failed: %w", cmd.Input.RoundNumber, err)
	}
	return output, nil
}

// RoundLoggingMiddleware logs per-team outcomes of every resolved round to
// the logger carried by the context. Other request types pass through.
func RoundLoggingMiddleware() common.Middleware {
	return func(ctx context.Context, request common.Request, next common.HandlerFunc) (common.Response, error) {
		response, err := next(ctx, request)
		if err != nil {
			return nil, err
		}

		output, ok := response.(*round.Output)
		if !ok {
			return response, nil
		}

		logger := common.LoggerFromContext(ctx)
		for _, result := range output.Results {
			failed := 0
			for _, mr := range result.ModuleResults {
				if !mr.Success {
					failed++
				}
			}
			logger.Log("info", "team round resolved", map[string]interface{}{
				"team":          result.TeamID,
				"round":         result.Round,
				"netIncome":     result.Financial.NetIncome,
				"rank":          result.OverallRank,
				"failedModules": failed,
				"newAwards":     len(result.NewAwards),
			})
		}
		return response, nil
	}
}
