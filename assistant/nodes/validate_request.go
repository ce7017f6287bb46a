package chatnode

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidMessage = errors.New("message is empty")

// DefaultCustomerID is used when the caller does not identify itself.
const DefaultCustomerID = "default"

type GraphInput struct {
	CustomerID string
	Message    string
}

type GraphOutput struct {
	Reply string
}

type GraphState struct {
	CustomerID string
	Message    string
	Now        time.Time

	MemorySnippet string
	SystemPrompt  string
	UserContent   string

	Reply    string
	Degraded bool
}

func ValidateRequest(in GraphInput, nowFn func() time.Time) (*GraphState, error) {
	message := strings.TrimSpace(in.Message)
	if message == "" {
		return nil, ErrInvalidMessage
	}

	customerID := strings.TrimSpace(in.CustomerID)
	if customerID == "" {
		customerID = DefaultCustomerID
	}

	return &GraphState{
		CustomerID: customerID,
		Message:    message,
		Now:        nowFn().UTC(),
	}, nil
}
