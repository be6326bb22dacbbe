package engine

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/NagaPranavN/evolol/internal/domain"
	"github.com/NagaPranavN/evolol/internal/infrastructure/storage"
	"github.com/NagaPranavN/evolol/pkg/api"
)

func newTestService(t *testing.T, history storage.HistoryStore) *GameService {
	t.Helper()
	cfg := NewConfig()
	cfg.Seed = 2024
	s, err := NewService(cfg, history)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return s
}

func tickCmd(count int) domain.InternalCommand {
	payload, _ := json.Marshal(api.TickPayload{Count: count})
	return domain.InternalCommand{Type: domain.CommandTick, Payload: payload}
}

func TestNewService_InitialSnapshot(t *testing.T) {
	s := newTestService(t, nil)

	snap := s.Snapshot()
	if snap.Tick != 0 || snap.RunID != s.RunID {
		t.Errorf("unexpected snapshot header: tick=%d run=%s", snap.Tick, snap.RunID)
	}
	if len(snap.Agents) != domain.AgentsCount || len(snap.Foods) != domain.FoodCount || len(snap.Walls) != domain.WallsCount {
		t.Errorf("unexpected entity counts: %d/%d/%d", len(snap.Agents), len(snap.Foods), len(snap.Walls))
	}
	if snap.Grid.Width != domain.BoardWidth || snap.Grid.Height != domain.BoardHeight {
		t.Errorf("unexpected grid: %+v", snap.Grid)
	}
	if len(s.Brain()) == 0 {
		t.Error("default brain should be loaded")
	}
}

func TestNewService_InvalidConfig(t *testing.T) {
	cfg := NewConfig()
	cfg.Width = 0
	if _, err := NewService(cfg, nil); err == nil {
		t.Error("expected error for zero-width board")
	}

	cfg = NewConfig()
	cfg.BrainPath = "/does/not/exist.json"
	if _, err := NewService(cfg, nil); err == nil {
		t.Error("expected error for missing brain file")
	}
}

func TestHandleCommand_Tick(t *testing.T) {
	s := newTestService(t, nil)
	updates := s.Hub.Register("viewer")

	if err := s.HandleCommand(tickCmd(5)); err != nil {
		t.Fatalf("tick: %v", err)
	}

	if s.Snapshot().Tick != 5 {
		t.Errorf("expected tick 5, got %d", s.Snapshot().Tick)
	}
	if s.LastReport().Tick != 5 {
		t.Errorf("expected last report for tick 5, got %d", s.LastReport().Tick)
	}

	select {
	case msg := <-updates:
		if msg.Tick != 5 || msg.Type != "UPDATE" {
			t.Errorf("unexpected broadcast: type=%s tick=%d", msg.Type, msg.Tick)
		}
	default:
		t.Error("expected broadcast after TICK")
	}

	// Пустой payload - один тик
	if err := s.HandleCommand(domain.InternalCommand{Type: domain.CommandTick}); err != nil {
		t.Fatalf("empty tick: %v", err)
	}
	if s.Snapshot().Tick != 6 {
		t.Errorf("expected tick 6, got %d", s.Snapshot().Tick)
	}
}

func TestHandleCommand_RejectsBadPayload(t *testing.T) {
	s := newTestService(t, nil)

	tests := []struct {
		name string
		cmd  domain.InternalCommand
	}{
		{"negative count", tickCmd(-1)},
		{"too many ticks", tickCmd(api.MaxTicksPerCommand + 1)},
		{"broken json", domain.InternalCommand{Type: domain.CommandTick, Payload: json.RawMessage(`{"count":`)}},
		{"brain without rules", domain.InternalCommand{Type: domain.CommandBrain, Payload: json.RawMessage(`{}`)}},
		{"brain with unknown action", domain.InternalCommand{Type: domain.CommandBrain,
			Payload: json.RawMessage(`{"rules":[{"state":0,"env":"NOTHING","action":"FLY","next":0}]}`)}},
		{"unknown command", domain.InternalCommand{Type: domain.CommandUnknown}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := s.HandleCommand(tt.cmd); err == nil {
				t.Error("expected error")
			}
		})
	}

	if s.Snapshot().Tick != 0 {
		t.Error("rejected commands must not advance the world")
	}
	if len(s.Replay.Commands) != 0 {
		t.Errorf("rejected commands must not be recorded, got %d", len(s.Replay.Commands))
	}
}

func TestHandleCommand_BrainReplacesTable(t *testing.T) {
	s := newTestService(t, nil)

	payload := json.RawMessage(`{"rules":[{"state":0,"env":"nothing","action":"nop","next":0}]}`)
	if err := s.HandleCommand(domain.InternalCommand{Type: domain.CommandBrain, Payload: payload}); err != nil {
		t.Fatalf("brain: %v", err)
	}

	rules := s.Brain()
	if len(rules) != 1 || rules[0].Action != "NOP" || rules[0].Env != "NOTHING" {
		t.Errorf("unexpected rules: %+v", rules)
	}
	// В реплей пишется нормализованный payload
	if len(s.Replay.Commands) != 1 || s.Replay.Commands[0].Command != domain.CommandBrain {
		t.Fatalf("brain command not recorded: %+v", s.Replay.Commands)
	}
	var recorded api.BrainPayload
	if err := json.Unmarshal(s.Replay.Commands[0].Payload, &recorded); err != nil {
		t.Fatalf("recorded payload: %v", err)
	}
	if recorded.Rules[0].Action != "NOP" {
		t.Errorf("recorded payload not normalized: %+v", recorded)
	}
}

func TestHandleCommand_InitIsUnicast(t *testing.T) {
	s := newTestService(t, nil)
	me := s.Hub.Register("me")
	other := s.Hub.Register("other")

	if err := s.HandleCommand(domain.InternalCommand{Type: domain.CommandInit, Source: "me"}); err != nil {
		t.Fatalf("init: %v", err)
	}

	select {
	case msg := <-me:
		if msg.Type != "INIT" {
			t.Errorf("expected INIT, got %s", msg.Type)
		}
	default:
		t.Error("expected INIT snapshot")
	}
	if len(other) != 0 {
		t.Error("INIT must only go to the requester")
	}
	if len(s.Replay.Commands) != 0 {
		t.Error("INIT must not be recorded")
	}
}

func TestService_RecordsHistory(t *testing.T) {
	ctx := context.Background()
	history := storage.NewMemoryStore()
	if err := history.Init(ctx); err != nil {
		t.Fatalf("init store: %v", err)
	}
	s := newTestService(t, history)

	if err := s.HandleCommand(tickCmd(3)); err != nil {
		t.Fatalf("tick: %v", err)
	}

	if _, ok, _ := history.GetRun(ctx, s.RunID); !ok {
		t.Error("run should be saved")
	}
	ticks, err := history.Ticks(ctx, s.RunID)
	if err != nil {
		t.Fatalf("ticks: %v", err)
	}
	if !reflect.DeepEqual(ticks, []int{0, 1, 2, 3}) {
		t.Errorf("expected snapshots for ticks 0..3, got %v", ticks)
	}

	tick, payload, ok, err := history.LatestSnapshot(ctx, s.RunID)
	if err != nil || !ok || tick != 3 {
		t.Fatalf("latest: tick=%d ok=%t err=%v", tick, ok, err)
	}
	var snap api.ServerResponse
	if err := json.Unmarshal(payload, &snap); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if snap.Tick != 3 || snap.RunID != s.RunID {
		t.Errorf("unexpected stored snapshot: tick=%d run=%s", snap.Tick, snap.RunID)
	}
}

func TestService_RunLoop(t *testing.T) {
	s := newTestService(t, nil)
	updates := s.Hub.Register("viewer")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	s.ProcessCommand("viewer", api.ClientCommand{Action: "tick", Payload: json.RawMessage(`{"count":2}`)})

	select {
	case msg := <-updates:
		if msg.Tick != 2 {
			t.Errorf("expected tick 2, got %d", msg.Tick)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for update")
	}

	// Ошибка уходит отправителю как ERROR
	s.ProcessCommand("viewer", api.ClientCommand{Action: "TICK", Payload: json.RawMessage(`{"count":-5}`)})
	select {
	case msg := <-updates:
		if msg.Type != "ERROR" || len(msg.Logs) != 1 {
			t.Errorf("expected ERROR response, got %+v", msg)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for error")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}

func TestProcessCommand_UnknownAction(t *testing.T) {
	s := newTestService(t, nil)
	updates := s.Hub.Register("viewer")

	s.ProcessCommand("viewer", api.ClientCommand{Action: "MOVE"})

	if len(s.CommandChan) != 0 {
		t.Error("unknown command must not be queued")
	}
	msg := <-updates
	if msg.Type != "ERROR" {
		t.Errorf("expected ERROR, got %s", msg.Type)
	}
	if len(msg.Logs) != 1 || msg.Logs[0].Type != "ERROR" {
		t.Errorf("unexpected error log: %+v", msg.Logs)
	}
}

func TestSimulate_ReproducesRun(t *testing.T) {
	s := newTestService(t, nil)

	cmds := []domain.InternalCommand{
		tickCmd(10),
		{Type: domain.CommandBrain, Payload: json.RawMessage(`{"rules":[{"state":0,"env":"NOTHING","action":"STEP","next":1},{"state":1,"env":"NOTHING","action":"STEP","next":0}]}`)},
		tickCmd(7),
		{Type: domain.CommandTick},
	}
	for _, cmd := range cmds {
		if err := s.HandleCommand(cmd); err != nil {
			t.Fatalf("command %s: %v", cmd.Type, err)
		}
	}

	// Через файл, как в режиме -replay
	dir := t.TempDir()
	path, err := s.SaveReplay(dir)
	if err != nil {
		t.Fatalf("save replay: %v", err)
	}
	session, err := storage.LoadReplay(path)
	if err != nil {
		t.Fatalf("load replay: %v", err)
	}

	replayed, err := Simulate(session)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}

	live := s.World()
	if replayed.World.Tick != live.Tick || live.Tick != 18 {
		t.Errorf("tick mismatch: live=%d replayed=%d", live.Tick, replayed.World.Tick)
	}
	if !reflect.DeepEqual(replayed.World.Agents, live.Agents) {
		t.Error("replayed agents differ from live run")
	}
	if !reflect.DeepEqual(replayed.World.Foods, live.Foods) {
		t.Error("replayed food differs from live run")
	}
	if !reflect.DeepEqual(replayed.World.Brain.Rules(), live.Brain.Rules()) {
		t.Error("replayed brain differs from live run")
	}
}

func TestSimulate_DetectsDesync(t *testing.T) {
	session := &domain.ReplaySession{
		Seed: 1, Width: 12, Height: 9, Agents: 2, Foods: 1, Walls: 1,
	}
	session.Record(5, domain.CommandTick, json.RawMessage(`{"count":1}`))

	if _, err := Simulate(session); err == nil {
		t.Error("expected desync error")
	}
}
