package contract

import "errors"

var (
	ErrAgentInvoke = errors.New("agent completion failed")
	ErrMemoryStore = errors.New("memory store request failed")
	ErrValidation  = errors.New("validation failed")
)
