package chatnode

import (
	"fmt"

	contractx "github.com/napatw/shopmind/assistant/contract"
	promptx "github.com/napatw/shopmind/assistant/prompt"
	catalogx "github.com/napatw/shopmind/catalog"
)

// BuildPrompt assembles the system prompt from the catalog and appends the
// recalled customer history, if any, to the user message.
func BuildPrompt(in *GraphState, cat *catalogx.Catalog) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	in.SystemPrompt = promptx.System(cat.Products())
	in.UserContent = in.Message
	if in.MemorySnippet != "" {
		in.UserContent = in.Message + "\n\nCustomer history: " + in.MemorySnippet
	}
	return in, nil
}
