package contract

// Role identifies the author of a conversation message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of a conversation sent to the agent service.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Exchange is a completed chat turn handed to the memory store for
// long-term recall. Metadata is opaque to the store.
type Exchange struct {
	CustomerID string         `json:"customer_id"`
	UserInput  string         `json:"user_input"`
	Output     string         `json:"ai_output"`
	Model      string         `json:"model"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}
