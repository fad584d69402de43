package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"presence-lab/domain/presence"
	"presence-lab/errors"
	"presence-lab/infrastructure/discord"
	"presence-lab/internal"
	"presence-lab/moderation"
	"presence-lab/observability"
	"presence-lab/repositories"
	"presence-lab/runtime/workers"
	"presence-lab/services"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

const restartInterval = 5 * time.Second

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
	}
	os.Exit(code)
}

// run wires every component and blocks until SIGINT/SIGTERM.
// Returning instead of exiting lets the deferred cleanups run.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	config, err := internal.LoadConfig()
	if err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Presence state
	repo, err := openRepository(config, log)
	if err != nil {
		return exitRuntime, err
	}
	defer func() {
		log.Info("Closing presence store...")
		_ = repo.Close()
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	metrics := observability.NewMetrics(registry)

	censor, err := newCensor(config, log)
	if err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	// 3. Gateway & tracker
	gateway, err := discord.NewGateway(config.Token, log)
	if err != nil {
		return exitRuntime, err
	}
	service := services.NewPresenceService(log, repo, gateway, gateway, metrics, services.Settings{
		CommandPrefix: config.CommandPrefix,
		StaffRoleName: config.StaffRoleName,
		SummaryLimit:  config.SummaryLimit,
		Censor:        censor,
	})

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events := make(chan presence.MessageEvent, config.EventBufferSize)
	loop := workers.NewEventLoop(events, service, metrics, log)
	gateway.OnMessage(func(evt presence.MessageEvent) {
		loop.Submit(ctx, evt)
	})

	// 5. Supervision
	sup := workers.NewSupervisor(log, restartInterval)
	sup.Add(loop, gateway)
	if config.MetricsAddr != "" {
		sup.Add(observability.NewMetricsServer(config.MetricsAddr, registry, log))
	}

	log.Info("Starting presence tracker",
		"staff_role", config.StaffRoleName, "prefix", config.CommandPrefix, "store", config.StoreBackend)
	sup.Run(ctx)
	log.Info("Program stopped cleanly")

	return exitOK, nil
}

func openRepository(config internal.Config, log *slog.Logger) (repositories.IPresenceRepository, error) {
	if config.StoreBackend == internal.StoreBadger {
		return repositories.NewBadgerPresenceRepository(log)
	}
	return repositories.NewMemoryPresenceRepository(), nil
}

// newCensor returns nil when no word list is configured.
func newCensor(config internal.Config, log *slog.Logger) (presence.Censor, error) {
	words := moderation.ParseWords(config.CensoredWords)
	if len(words) == 0 {
		return nil, nil
	}
	char, err := internal.CharacterRune(config.CensorCharacter)
	if err != nil {
		return nil, err
	}
	moderator, err := moderation.NewModerator(words, char, log)
	if stderrors.Is(err, errors.ErrEmptyCensoredWords) {
		log.Warn("CENSORED_WORDS holds no usable word, excerpts are left as is")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return moderator.CensorContent, nil
}
