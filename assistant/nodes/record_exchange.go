package chatnode

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	contractx "github.com/napatw/shopmind/assistant/contract"
)

// RecordExchange writes the finished turn to long-term memory so future
// lookups can personalize replies. Recording is best effort and never
// fails the turn.
func RecordExchange(ctx context.Context, in *GraphState, memory contractx.MemoryStore, platform string) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	metadata := map[string]any{
		"platform":         platform,
		"customer_id":      in.CustomerID,
		"interaction_type": "shopping_assistance",
		"had_context":      in.MemorySnippet != "",
	}
	if in.Degraded {
		metadata["error"] = true
	}

	exch := contractx.Exchange{
		CustomerID: in.CustomerID,
		UserInput:  fmt.Sprintf("[Customer:%s] %s", in.CustomerID, in.Message),
		Output:     in.Reply,
		Model:      platform,
		Metadata:   metadata,
	}

	if err := memory.Record(ctx, exch); err != nil {
		log.Warn().Err(err).Str("customer_id", in.CustomerID).Msg("memory record failed, reply unaffected")
	}
	return in, nil
}
