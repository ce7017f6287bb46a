package chatnode

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	contractx "github.com/napatw/shopmind/assistant/contract"
)

// DegradedReply is returned when the agent service fails; the turn still
// succeeds so catalog browsing and chat stay available during an outage.
const DegradedReply = "Sorry, I encountered a problem while answering. Please try again in a moment."

func Complete(ctx context.Context, in *GraphState, completer contractx.Completer) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	reply, err := completer.Complete(ctx, in.SystemPrompt, []contractx.Message{
		{Role: contractx.RoleUser, Content: in.UserContent},
	})
	if err != nil {
		log.Error().Err(err).Str("customer_id", in.CustomerID).Msg("agent completion failed, replying degraded")
		in.Reply = DegradedReply
		in.Degraded = true
		return in, nil
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		log.Error().Str("customer_id", in.CustomerID).Msg("agent returned empty completion, replying degraded")
		in.Reply = DegradedReply
		in.Degraded = true
		return in, nil
	}

	in.Reply = reply
	return in, nil
}
