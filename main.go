package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog/log"

	assistantx "github.com/napatw/shopmind/assistant"
	contractx "github.com/napatw/shopmind/assistant/contract"
	llmx "github.com/napatw/shopmind/assistant/llm"
	memoryx "github.com/napatw/shopmind/assistant/memory"
	catalogx "github.com/napatw/shopmind/catalog"
	configx "github.com/napatw/shopmind/pkg/config"
	_ "github.com/napatw/shopmind/pkg/logger/autoload"
	serverx "github.com/napatw/shopmind/server"
)

type AppConfig struct {
	// MemoryBackend selects long-term memory: "service" (external REST
	// memory service), "postgres" (built-in conversation log), or "none".
	MemoryBackend string `envconfig:"MEMORY_BACKEND" split_words:"true" default:"none"`
	AgentPlatform string `envconfig:"AGENT_PLATFORM" split_words:"true" default:"digitalocean"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appCfg := configx.MustNew[AppConfig]("")

	agentCfg := configx.MustNew[llmx.Config]("AGENT")
	completer := llmx.MustNewClient(*agentCfg)

	memory := buildMemoryStore(ctx, appCfg.MemoryBackend)

	cat := catalogx.Default()

	assistant, err := assistantx.New(cat, completer, memory, assistantx.Config{
		Platform: appCfg.AgentPlatform,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("build assistant")
	}

	serverCfg := configx.MustNew[serverx.Config]("SERVER")
	srv, err := serverx.New(cat, assistant, memory, *serverCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("build server")
	}

	if err := srv.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("http server failed")
	}
}

func buildMemoryStore(ctx context.Context, backend string) contractx.MemoryStore {
	switch strings.TrimSpace(backend) {
	case "service":
		cfg := configx.MustNew[memoryx.Config]("MEMORY_SERVICE")
		store, err := memoryx.NewClient(*cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("build memory service client")
		}
		return store
	case "postgres":
		cfg := configx.MustNew[memoryx.PostgresConfig]("MEMORY_POSTGRES")
		store, err := memoryx.NewPostgresStore(*cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("build postgres memory store")
		}
		if err := store.Init(ctx); err != nil {
			log.Fatal().Err(err).Msg("init postgres memory store")
		}
		return store
	case "", "none":
		log.Warn().Msg("no memory backend configured, replies will not be personalized")
		return nil
	default:
		log.Fatal().Str("backend", backend).Msg("unknown memory backend")
		return nil
	}
}
