package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NagaPranavN/evolol/internal/agent"
	"github.com/NagaPranavN/evolol/internal/domain"
	"github.com/NagaPranavN/evolol/internal/engine"
	"github.com/NagaPranavN/evolol/internal/infrastructure/storage"
	"github.com/NagaPranavN/evolol/internal/server"
	"github.com/NagaPranavN/evolol/internal/version"
	"github.com/NagaPranavN/evolol/pkg/api"
	"github.com/NagaPranavN/evolol/pkg/logger"
	"github.com/NagaPranavN/evolol/pkg/utils"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var (
		seed       int64
		scenarioID string
		brainPath  string
		replayPath string
		dbPath     string
		recordDir  string
		ticks      int
		port       string
		autotick   time.Duration
		autoStep   int
	)
	flag.Int64Var(&seed, "seed", 0, "World seed (0 for random)")
	flag.StringVar(&scenarioID, "scenario", "", "Named scenario; its name is hashed into the seed (overrides -seed)")
	flag.StringVar(&brainPath, "brain", "", "Path to a JSON rule table (empty for the built-in forager)")
	flag.StringVar(&replayPath, "replay", "", "Path to .evrp replay file to simulate")
	flag.StringVar(&dbPath, "db", "", "SQLite file for tick history (empty keeps history in memory)")
	flag.StringVar(&recordDir, "record", "replays", "Directory for replay files (empty disables recording)")
	flag.IntVar(&ticks, "ticks", 0, "Run N ticks headless, print a summary and exit")
	flag.StringVar(&port, "port", envOr("EVOLOL_PORT", "8080"), "HTTP port")
	flag.DurationVar(&autotick, "autotick", 0, "Server mode: send TICK every interval (0 waits for client commands)")
	flag.IntVar(&autoStep, "autostep", 1, "Ticks per autotick command")
	flag.Parse()

	logger.Log.Info("Starting evolol...")
	logger.Log.Info(version.String())

	// РЕЖИМ РЕПЛЕЯ
	if replayPath != "" {
		if err := runReplay(replayPath); err != nil {
			logger.Log.WithError(err).Fatal("Replay failed")
		}
		return
	}

	cfg := engine.NewConfig()
	cfg.BrainPath = brainPath
	if scenarioID != "" {
		seed = utils.StringToSeed(scenarioID)
	}
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("Using explicit seed: %d", seed)
	} else {
		logger.Log.Infof("Using random seed: %d", cfg.Seed)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	history, err := openHistory(ctx, dbPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to open history store")
	}
	defer history.Close()

	gameService, err := engine.NewService(cfg, history)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to create game service")
	}
	defer saveReplay(gameService, recordDir)

	// ГОЛОВНОЙ РЕЖИМ (без сервера)
	if ticks > 0 {
		if err := runHeadless(gameService, ticks); err != nil {
			logger.Log.WithError(err).Error("Headless run failed")
		}
		return
	}

	// 2. Цикл команд и сервер
	go gameService.Run(ctx)

	if autotick > 0 {
		go agent.NewAutopilot(gameService, autotick, autoStep, 0).Run(ctx)
	}

	srv := server.New(gameService, port)
	if err := srv.Run(ctx); err != nil {
		logger.Log.WithError(err).Error("Server error")
	}

	logger.Log.Info("Shutting down...")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func openHistory(ctx context.Context, dbPath string) (storage.HistoryStore, error) {
	kind := "memory"
	if dbPath != "" {
		kind = "sqlite"
	}
	store, err := storage.NewHistoryStore(kind, dbPath)
	if err != nil {
		return nil, err
	}
	if err := store.Init(ctx); err != nil {
		return nil, err
	}
	logger.Log.WithField("backend", kind).Info("History store ready")
	return store, nil
}

func runHeadless(s *engine.GameService, ticks int) error {
	started := time.Now()

	for left := ticks; left > 0; {
		n := left
		if n > api.MaxTicksPerCommand {
			n = api.MaxTicksPerCommand
		}
		payload, _ := json.Marshal(api.TickPayload{Count: n})
		if err := s.HandleCommand(domain.InternalCommand{Type: domain.CommandTick, Payload: payload}); err != nil {
			return err
		}
		left -= n
	}

	printSummary(s.World(), time.Since(started))
	return nil
}

func runReplay(path string) error {
	logger.Log.Info("Mode: Replay Simulation")

	session, err := storage.LoadReplay(path)
	if err != nil {
		return fmt.Errorf("load replay: %w", err)
	}

	started := time.Now()
	game, err := engine.Simulate(session)
	if err != nil {
		return err
	}

	logger.Log.WithFields(logrus.Fields{
		"recorded": humanize.Time(time.Unix(session.Timestamp, 0)),
		"commands": humanize.Comma(int64(len(session.Commands))),
	}).Info("Replay loaded")

	printSummary(game.World, time.Since(started))
	return nil
}

func printSummary(w *domain.World, elapsed time.Duration) {
	fmt.Printf("ticks:      %s\n", humanize.Comma(int64(w.Tick)))
	fmt.Printf("alive:      %d/%d\n", w.AliveCount(), len(w.Agents))
	fmt.Printf("food left:  %d/%d\n", w.RemainingFood(), len(w.Foods))
	fmt.Printf("elapsed:    %s\n", elapsed.Round(time.Millisecond))
	for i, a := range w.Agents {
		status := "alive"
		if a.Dead {
			status = "dead"
		}
		fmt.Printf("  agent %d  %-6s %s dir=%-5s hunger=%3d health=%3d state=%d\n",
			i, status, a.Pos, a.Dir, a.Hunger, a.Health, a.State)
	}
}

func saveReplay(s *engine.GameService, dir string) {
	if dir == "" {
		return
	}
	path, err := s.SaveReplay(dir)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to save replay")
		return
	}
	logger.Log.WithField("path", path).Info("Replay saved")
}
