package chatnode

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	contractx "github.com/napatw/shopmind/assistant/contract"
)

const (
	// Messages this short ("hi", "ok") carry no recall signal.
	minRecallMessageLength = 5
	maxRecallQueryLength   = 100
	maxSnippetLength       = 500

	// Memory services report an empty result as prose rather than an
	// empty payload; treat that sentence as "no match".
	noMemoriesMarker = "No relevant memories found"
)

// RecallMemory looks up prior context for the customer. Recall is best
// effort: a store failure is logged and the turn continues without
// context, so a memory outage never blocks chat.
func RecallMemory(ctx context.Context, in *GraphState, memory contractx.MemoryStore) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}
	if utf8.RuneCountInString(in.Message) <= minRecallMessageLength {
		return in, nil
	}

	query := "customer:" + in.CustomerID + " " + truncateRunes(in.Message, maxRecallQueryLength)
	snippet, err := memory.Lookup(ctx, query)
	if err != nil {
		log.Warn().Err(err).Str("customer_id", in.CustomerID).Msg("memory lookup failed, continuing without context")
		return in, nil
	}

	snippet = strings.TrimSpace(snippet)
	if snippet == "" || strings.Contains(snippet, noMemoriesMarker) {
		return in, nil
	}

	in.MemorySnippet = truncateRunes(snippet, maxSnippetLength)
	return in, nil
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
