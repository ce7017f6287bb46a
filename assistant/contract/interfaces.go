package contract

import "context"

// Completer is the agent service boundary: one prebuilt system prompt plus
// a conversation in, free text out.
type Completer interface {
	Complete(ctx context.Context, systemPrompt string, conversation []Message) (string, error)
}

// MemoryStore is the long-term memory boundary. Lookup returns an empty
// snippet when nothing relevant is stored; an error always means the store
// itself failed, never "no match".
type MemoryStore interface {
	Lookup(ctx context.Context, query string) (string, error)
	Record(ctx context.Context, exch Exchange) error
}
