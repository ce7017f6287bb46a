package memory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	contractx "github.com/napatw/shopmind/assistant/contract"
)

const (
	defaultRecallLimit = 5
	// Terms shorter than this match half the table and add noise.
	minRecallTermLength = 3
)

type PostgresConfig struct {
	DSN         string        `envconfig:"DSN" split_words:"true" required:"true"`
	RecallLimit int           `envconfig:"RECALL_LIMIT" split_words:"true" default:"5"`
	Timeout     time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"10s"`
}

type conversationRow struct {
	bun.BaseModel `bun:"table:conversations,alias:c"`

	ID         int64          `bun:"id,pk,autoincrement"`
	CustomerID string         `bun:"customer_id,notnull"`
	UserInput  string         `bun:"user_input,notnull"`
	Output     string         `bun:"ai_output,notnull"`
	Model      string         `bun:"model"`
	Metadata   map[string]any `bun:"metadata,type:jsonb"`
	CreatedAt  time.Time      `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// PostgresStore is the self-hosted memory backend: a conversation log in
// Postgres with keyword-based recall. It serves deployments without an
// external memory service.
type PostgresStore struct {
	db          *bun.DB
	recallLimit int
}

var _ contractx.MemoryStore = (*PostgresStore)(nil)

func NewPostgresStore(cfg PostgresConfig) (*PostgresStore, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(
		pgdriver.WithDSN(dsn),
		pgdriver.WithTimeout(timeout),
	))
	db := bun.NewDB(sqldb, pgdialect.New())

	recallLimit := cfg.RecallLimit
	if recallLimit <= 0 {
		recallLimit = defaultRecallLimit
	}

	return &PostgresStore{
		db:          db,
		recallLimit: recallLimit,
	}, nil
}

// Init creates the conversation table when it does not exist yet.
func (s *PostgresStore) Init(ctx context.Context) error {
	if _, err := s.db.NewCreateTable().
		Model((*conversationRow)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("%w: create conversations table: %v", contractx.ErrMemoryStore, err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// Lookup recalls recent exchanges matching the query's keywords. The
// query follows the recall convention "customer:{id} free text"; the
// customer tag scopes the scan and the remaining words are matched
// case-insensitively against past turns.
func (s *PostgresStore) Lookup(ctx context.Context, query string) (string, error) {
	customerID, terms := splitRecallQuery(query)
	if customerID == "" && len(terms) == 0 {
		return "", nil
	}

	var rows []conversationRow
	q := s.db.NewSelect().Model(&rows)
	if customerID != "" {
		q = q.Where("c.customer_id = ?", customerID)
	}
	if len(terms) > 0 {
		q = q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			for _, term := range terms {
				pattern := "%" + term + "%"
				q = q.WhereOr("c.user_input ILIKE ?", pattern).
					WhereOr("c.ai_output ILIKE ?", pattern)
			}
			return q
		})
	}

	if err := q.Order("c.created_at DESC").Limit(s.recallLimit).Scan(ctx); err != nil {
		return "", fmt.Errorf("%w: recall query: %v", contractx.ErrMemoryStore, err)
	}

	return formatRecall(rows), nil
}

// Record appends the exchange to the conversation log.
func (s *PostgresStore) Record(ctx context.Context, exch contractx.Exchange) error {
	row := &conversationRow{
		CustomerID: exch.CustomerID,
		UserInput:  exch.UserInput,
		Output:     exch.Output,
		Model:      exch.Model,
		Metadata:   exch.Metadata,
	}
	if _, err := s.db.NewInsert().Model(row).Exec(ctx); err != nil {
		return fmt.Errorf("%w: insert conversation: %v", contractx.ErrMemoryStore, err)
	}
	return nil
}

// splitRecallQuery separates the "customer:{id}" tag from the free-text
// keywords of a recall query. Words too short to discriminate are dropped.
func splitRecallQuery(query string) (customerID string, terms []string) {
	for _, field := range strings.Fields(query) {
		if rest, ok := strings.CutPrefix(field, "customer:"); ok {
			if customerID == "" {
				customerID = rest
			}
			continue
		}
		if len([]rune(field)) < minRecallTermLength {
			continue
		}
		terms = append(terms, field)
	}
	return customerID, terms
}

// formatRecall renders matched rows, newest first, as a snippet for the
// prompt. The caller truncates the result; this only joins lines.
func formatRecall(rows []conversationRow) string {
	if len(rows) == 0 {
		return ""
	}
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, "- "+r.UserInput+" | "+r.Output)
	}
	return strings.Join(lines, "\n")
}
