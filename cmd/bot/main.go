package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/cellwars/client-go/pkg/client"
	"github.com/cellwars/client-go/pkg/config"
	"github.com/cellwars/client-go/pkg/game"
	"github.com/cellwars/client-go/pkg/grid"
	"github.com/cellwars/client-go/pkg/log"
	"github.com/cellwars/client-go/pkg/recorder"
	"github.com/cellwars/client-go/pkg/transport"
	"github.com/cellwars/client-go/pkg/version"
)

// referenceBot is a minimal strategy that exercises the SDK: each cell
// attacks an adjacent enemy if there is one, otherwise it advances toward
// the enemy starting column.
type referenceBot struct{}

func (b *referenceBot) RunRound(world *game.WorldState) {
	enemies := world.EnemyCells()
	advance := grid.East
	if world.EnemyStartingColumn() < world.MyStartingColumn() {
		advance = grid.West
	}

	for _, cell := range world.MyCells() {
		attacked := false
		for _, enemy := range enemies {
			if cell.CanAttackCell(enemy) {
				cell.AttackCell(enemy)
				attacked = true
				break
			}
		}
		if !attacked {
			cell.MoveInDirection(advance)
		}
	}
}

func main() {
	if err := run(); err != nil {
		log.Error("Match failed: %v", err)
		os.Exit(1)
	}
}

// run holds all deferred cleanup so that a match failure still closes the
// transport, stops the recorder worker and releases the repository before
// main exits.
func run() error {
	configPath := flag.String("config", "", "Path to a YAML config file")
	logLevel := flag.String("log-level", "", "Log level (overrides config)")
	transportMode := flag.String("transport", "", "Transport mode: stdio, tcp or websocket (overrides config)")
	addr := flag.String("addr", "", "Server address for the tcp and websocket transports (overrides config)")
	recordDSN := flag.String("record-dsn", "", "Enable match recording to the given sqlite path (overrides config)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			panic(fmt.Sprintf("Failed to load config: %v", err))
		}
		cfg = loaded
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *transportMode != "" {
		cfg.Transport.Mode = *transportMode
	}
	if *addr != "" {
		cfg.Transport.Addr = *addr
	}
	if *recordDSN != "" {
		cfg.Recording.Enabled = true
		cfg.Recording.Driver = config.RecordingDriverSQLite
		cfg.Recording.DSN = *recordDSN
	}

	parsedLogLevel, err := log.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}
	logger := log.New(os.Stderr, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)

	log.Info("Starting cellwars bot version %s", version.Get())
	ctx := context.Background()

	tr, err := buildTransport(ctx, cfg)
	if err != nil {
		panic(fmt.Sprintf("Failed to set up transport: %v", err))
	}
	defer tr.Close()

	communicator := client.NewCommunicator(tr)

	var rec *recorder.MatchRecorder
	if cfg.Recording.Enabled {
		repo, err := buildRepository(ctx, cfg)
		if err != nil {
			panic(fmt.Sprintf("Failed to set up match recording: %v", err))
		}
		defer repo.Close(ctx)

		rec = recorder.NewMatchRecorder(repo)
		if err := rec.BeginMatch(ctx); err != nil {
			// Recording is diagnostics: play the match without it.
			log.Error("Failed to begin match recording: %v", err)
			rec = nil
		} else {
			log.Info("Recording match %s", rec.MatchID())
			workerCtx, cancel := context.WithCancel(ctx)
			go rec.Start(workerCtx)
			// The worker is the sole repository writer: stop it and wait
			// for its shutdown drain instead of draining from here.
			defer func() {
				cancel()
				<-rec.Done()
			}()
		}
	}

	coordinator := client.NewGameCoordinator(client.NewGameCoordinatorOptions{
		Communicator: communicator,
		Recorder:     rec,
	})

	return coordinator.Run(ctx, &referenceBot{})
}

func buildTransport(ctx context.Context, cfg *config.Config) (transport.Transport, error) {
	switch cfg.Transport.Mode {
	case config.TransportModeStdio:
		return transport.NewStdioTransport(os.Stdin, os.Stdout), nil
	case config.TransportModeTCP:
		t := transport.NewTCPTransport(cfg.Transport.Addr)
		if err := t.Connect(); err != nil {
			return nil, err
		}
		return t, nil
	case config.TransportModeWebSocket:
		t := transport.NewWSTransport(cfg.Transport.Addr)
		if err := t.Connect(ctx); err != nil {
			return nil, err
		}
		return t, nil
	default:
		return nil, fmt.Errorf("unknown transport mode: %s", cfg.Transport.Mode)
	}
}

func buildRepository(ctx context.Context, cfg *config.Config) (recorder.Repository, error) {
	switch cfg.Recording.Driver {
	case config.RecordingDriverSQLite:
		return recorder.NewSQLiteRepository(ctx, cfg.Recording.DSN)
	case config.RecordingDriverPostgres:
		return recorder.NewPostgresRepository(ctx, cfg.Recording.DSN)
	default:
		return nil, fmt.Errorf("unknown recording driver: %s", cfg.Recording.Driver)
	}
}
