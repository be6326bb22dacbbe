package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/NagaPranavN/evolol/internal/domain"
	"github.com/NagaPranavN/evolol/internal/infrastructure/brainfile"
	"github.com/NagaPranavN/evolol/internal/infrastructure/storage"
	"github.com/NagaPranavN/evolol/internal/network"
	"github.com/NagaPranavN/evolol/pkg/api"
	"github.com/NagaPranavN/evolol/pkg/logger"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrUnknownCommand - команда не распознана
var ErrUnknownCommand = errors.New("unknown command")

// GameService владеет миром. Все изменения идут через CommandChan и
// исполняются по одной командой в Run, поэтому движок никогда не видит
// конкурентных писателей. Читатели (HTTP, адаптер) получают только
// готовые снимки между тиками.
type GameService struct {
	RunID  string
	Config Config

	CommandChan chan domain.InternalCommand
	Hub         *network.Broadcaster

	History storage.HistoryStore // Может быть nil
	Replay  *domain.ReplaySession

	mu         sync.RWMutex
	game       *GameEngine
	snapshot   *api.ServerResponse
	lastReport TickReport
}

func NewService(cfg Config, history storage.HistoryStore) (*GameService, error) {
	brain, err := loadBrain(cfg)
	if err != nil {
		return nil, fmt.Errorf("load brain: %w", err)
	}

	warnShadowed(brain)

	world, err := buildInitialWorld(cfg, brain)
	if err != nil {
		return nil, err
	}

	brainJSON, err := brainfile.Marshal(brain)
	if err != nil {
		return nil, fmt.Errorf("encode brain: %w", err)
	}

	s := &GameService{
		RunID:       uuid.NewString(),
		Config:      cfg,
		CommandChan: make(chan domain.InternalCommand, 100),
		Hub:         network.NewBroadcaster(),
		History:     history,
		Replay: &domain.ReplaySession{
			Seed:      cfg.Seed,
			Timestamp: time.Now().Unix(),
			Width:     cfg.Width,
			Height:    cfg.Height,
			Agents:    cfg.Agents,
			Foods:     cfg.Foods,
			Walls:     cfg.Walls,
			Brain:     brainJSON,
		},
		game: NewGame(world),
	}

	s.game.AddLog(fmt.Sprintf("Мир создан: %dx%d, агентов %d, еды %d, стен %d.",
		cfg.Width, cfg.Height, cfg.Agents, cfg.Foods, cfg.Walls), "INFO")

	if s.History != nil {
		run := storage.RunRecord{
			ID: s.RunID, Seed: cfg.Seed, Width: cfg.Width, Height: cfg.Height, CreatedAt: time.Now(),
		}
		if err := s.History.SaveRun(context.Background(), run); err != nil {
			return nil, fmt.Errorf("save run: %w", err)
		}
	}

	s.publishSnapshot()

	logger.Log.WithFields(logrus.Fields{
		"component": "game_service",
		"run_id":    s.RunID,
		"seed":      cfg.Seed,
		"rules":     brain.Len(),
	}).Info("Game service created.")

	return s, nil
}

// Run - цикл единственного писателя. Завершается по отмене контекста.
func (s *GameService) Run(ctx context.Context) {
	logger.Log.WithField("run_id", s.RunID).Info("[LOOP] Command loop started")

	for {
		select {
		case <-ctx.Done():
			logger.Log.WithField("run_id", s.RunID).Info("[LOOP] Command loop stopped")
			return
		case cmd := <-s.CommandChan:
			if err := s.HandleCommand(cmd); err != nil {
				logger.Log.WithFields(logrus.Fields{
					"component": "game_service",
					"command":   cmd.Type.String(),
					"source":    cmd.Source,
				}).WithError(err).Warn("Command rejected")
				s.sendError(cmd.Source, err)
			}
		}
	}
}

// ProcessCommand принимает команду от внешнего мира (WebSocket) и ставит в очередь
func (s *GameService) ProcessCommand(source string, externalCmd api.ClientCommand) {
	cmdType := domain.ParseCommand(externalCmd.Action)
	if cmdType == domain.CommandUnknown {
		logger.Log.WithField("action", externalCmd.Action).Warn("Unknown command")
		s.sendError(source, fmt.Errorf("%w: %s", ErrUnknownCommand, externalCmd.Action))
		return
	}

	s.CommandChan <- domain.InternalCommand{
		Type:    cmdType,
		Source:  source,
		Payload: externalCmd.Payload,
	}
}

// HandleCommand исполняет одну команду синхронно
func (s *GameService) HandleCommand(cmd domain.InternalCommand) error {
	if cmd.Type == domain.CommandInit {
		snap := s.Snapshot()
		snap.Type = "INIT"
		s.Hub.SendTo(cmd.Source, *snap)
		return nil
	}
	if !cmd.Type.Mutates() {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd.Type)
	}

	s.mu.Lock()
	tick := s.game.World.Tick
	payload, err := applyCommand(s.game, cmd.Type, cmd.Payload, func(r TickReport) {
		s.lastReport = r
		s.recordSnapshotLocked()
	})
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.Replay.Record(tick, cmd.Type, payload)
	if cmd.Type == domain.CommandBrain {
		s.snapshot = BuildSnapshot(s.game.World, s.RunID, s.game.DrainLogs())
	}
	snap := *s.snapshot
	s.mu.Unlock()

	s.Hub.Broadcast(snap)
	return nil
}

// Snapshot возвращает последний завершенный снимок мира (копию)
func (s *GameService) Snapshot() *api.ServerResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := *s.snapshot
	return &snap
}

// LastReport возвращает отчет последнего тика
func (s *GameService) LastReport() TickReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastReport
}

// Brain возвращает текущую таблицу правил в текстовом виде
func (s *GameService) Brain() []api.RuleView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return brainfile.FromBrain(s.game.World.Brain)
}

// World возвращает независимую копию мира
func (s *GameService) World() *domain.World {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.World.Clone()
}

// SaveReplay пишет ленту команд в dir
func (s *GameService) SaveReplay(dir string) (string, error) {
	svc, err := storage.NewReplayService(dir)
	if err != nil {
		return "", err
	}

	s.mu.RLock()
	session := *s.Replay
	session.Commands = append([]domain.ReplayCommand(nil), s.Replay.Commands...)
	s.mu.RUnlock()

	return svc.Save(&session)
}

// publishSnapshot строит снимок начального состояния
func (s *GameService) publishSnapshot() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recordSnapshotLocked()
}

// recordSnapshotLocked строит снимок и пишет его в историю. Требует s.mu.
func (s *GameService) recordSnapshotLocked() {
	s.snapshot = BuildSnapshot(s.game.World, s.RunID, s.game.DrainLogs())

	if s.History == nil {
		return
	}
	payload, err := json.Marshal(s.snapshot)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to encode snapshot")
		return
	}
	if err := s.History.SaveSnapshot(context.Background(), s.RunID, s.snapshot.Tick, payload); err != nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "game_service",
			"tick":      s.snapshot.Tick,
		}).WithError(err).Error("Failed to save snapshot")
	}
}

func (s *GameService) sendError(source string, err error) {
	if source == "" {
		return
	}
	s.Hub.SendTo(source, api.ServerResponse{
		Type:  "ERROR",
		RunID: s.RunID,
		Tick:  s.Snapshot().Tick,
		Logs: []api.LogEntry{{
			ID:        uuid.NewString(),
			Text:      err.Error(),
			Type:      "ERROR",
			Timestamp: time.Now().UnixMilli(),
		}},
	})
}
