// Package assistant runs the memory-enhanced chat pipeline: recall prior
// customer context, build a catalog-aware prompt, complete against the
// agent service, and record the exchange for future turns.
package assistant

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cloudwego/eino/compose"

	contractx "github.com/napatw/shopmind/assistant/contract"
	nodex "github.com/napatw/shopmind/assistant/nodes"
	catalogx "github.com/napatw/shopmind/catalog"
)

var ErrInvalidMessage = nodex.ErrInvalidMessage

type Config struct {
	// Platform names the agent backend in recorded memory metadata.
	Platform string
}

const defaultPlatform = "digitalocean"

type Service struct {
	catalog   *catalogx.Catalog
	completer contractx.Completer
	memory    contractx.MemoryStore
	platform  string

	graphRunner compose.Runnable[nodex.GraphInput, nodex.GraphOutput]

	now func() time.Time
}

func New(
	cat *catalogx.Catalog,
	completer contractx.Completer,
	memory contractx.MemoryStore,
	cfg Config,
) (*Service, error) {
	if cat == nil {
		return nil, errors.New("catalog is required")
	}
	if completer == nil {
		return nil, errors.New("completer is required")
	}
	if memory == nil {
		memory = noopMemoryStore{}
	}

	platform := strings.TrimSpace(cfg.Platform)
	if platform == "" {
		platform = defaultPlatform
	}

	s := &Service{
		catalog:   cat,
		completer: completer,
		memory:    memory,
		platform:  platform,
		now:       time.Now,
	}

	graphRunner, err := s.compileChatGraph(context.Background())
	if err != nil {
		return nil, err
	}
	s.graphRunner = graphRunner

	return s, nil
}

// HandleMessage runs one chat turn and returns the assistant's reply.
// Collaborator failures degrade to an apology reply rather than an error;
// the only error paths left are invalid input and pipeline bugs.
func (s *Service) HandleMessage(ctx context.Context, customerID string, message string) (string, error) {
	out, err := s.graphRunner.Invoke(ctx, nodex.GraphInput{
		CustomerID: customerID,
		Message:    message,
	})
	if err != nil {
		return "", err
	}
	return out.Reply, nil
}

type noopMemoryStore struct{}

func (noopMemoryStore) Lookup(context.Context, string) (string, error) {
	return "", nil
}

func (noopMemoryStore) Record(context.Context, contractx.Exchange) error {
	return nil
}
