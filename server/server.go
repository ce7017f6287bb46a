// Package server exposes the catalog and the chat assistant over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	contractx "github.com/napatw/shopmind/assistant/contract"
	catalogx "github.com/napatw/shopmind/catalog"
)

type Config struct {
	ListenAddr      string        `envconfig:"LISTEN_ADDR" split_words:"true" default:":8000"`
	AllowedOrigins  []string      `envconfig:"ALLOWED_ORIGINS" split_words:"true" default:"http://localhost:3000,http://127.0.0.1:3000"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" split_words:"true" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" split_words:"true" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" split_words:"true" default:"10s"`
}

// Assistant is the chat capability the server needs; the assistant
// package's Service satisfies it.
type Assistant interface {
	HandleMessage(ctx context.Context, customerID string, message string) (string, error)
}

type Server struct {
	catalog   *catalogx.Catalog
	assistant Assistant
	memory    contractx.MemoryStore
	cfg       Config
}

func New(cat *catalogx.Catalog, assistant Assistant, memory contractx.MemoryStore, cfg Config) (*Server, error) {
	if cat == nil {
		return nil, errors.New("catalog is required")
	}
	if assistant == nil {
		return nil, errors.New("assistant is required")
	}

	return &Server{
		catalog:   cat,
		assistant: assistant,
		memory:    memory,
		cfg:       cfg,
	}, nil
}

// Router builds the HTTP handler chain: routes, CORS for the configured
// browser origins, and request logging.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/", s.handleRoot).Methods(http.MethodGet)
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/chat", s.handleChat).Methods(http.MethodPost)
	r.HandleFunc("/products", s.handleListProducts).Methods(http.MethodGet)
	// Registered before the {productID} route so "search" is not read as an id.
	r.HandleFunc("/products/search", s.handleSearchProducts).Methods(http.MethodPost)
	r.HandleFunc("/products/{productID}", s.handleGetProduct).Methods(http.MethodGet)
	r.HandleFunc("/categories", s.handleListCategories).Methods(http.MethodGet)
	r.HandleFunc("/memory/search", s.handleMemorySearch).Methods(http.MethodGet)

	cors := handlers.CORS(
		handlers.AllowedOrigins(s.cfg.AllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		handlers.AllowCredentials(),
	)

	return requestLogger(cors(r))
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:         s.cfg.ListenAddr,
		Handler:      s.Router(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.cfg.ListenAddr).Msg("http server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	log.Info().Msg("shutting down http server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
