package agent

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/NagaPranavN/evolol/internal/engine"
	"github.com/NagaPranavN/evolol/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func newService(t *testing.T) *engine.GameService {
	t.Helper()
	cfg := engine.NewConfig()
	cfg.Seed = 31337
	s, err := engine.NewService(cfg, nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return s
}

func TestAutopilot_StopsAtMaxTicks(t *testing.T) {
	s := newService(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	go s.Run(ctx)

	pilot := NewAutopilot(s, 5*time.Millisecond, 4, 10)
	done := make(chan struct{})
	go func() {
		pilot.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		t.Fatal("autopilot did not finish in time")
	}

	if pilot.Last().Tick != 10 {
		t.Errorf("expected to stop exactly at tick 10, got %d", pilot.Last().Tick)
	}
	if s.Snapshot().Tick != 10 {
		t.Errorf("engine tick %d, want 10", s.Snapshot().Tick)
	}
	if s.Hub.HasSubscriber(pilot.ID) {
		t.Error("autopilot should unsubscribe on exit")
	}
}

func TestAutopilot_StopsOnCancel(t *testing.T) {
	s := newService(t)
	ctx, cancel := context.WithCancel(context.Background())
	go s.Run(ctx)

	pilot := NewAutopilot(s, time.Hour, 1, 0)
	done := make(chan struct{})
	go func() {
		pilot.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("autopilot ignored cancellation")
	}
	if s.Snapshot().Tick != 0 {
		t.Error("no ticks expected before the first interval")
	}
}

func TestNewAutopilot_ClampsStep(t *testing.T) {
	s := newService(t)
	if p := NewAutopilot(s, time.Second, 0, 0); p.Step != 1 {
		t.Errorf("step 0 should become 1, got %d", p.Step)
	}
	if p := NewAutopilot(s, time.Second, 1_000_000, 0); p.Step != 1000 {
		t.Errorf("step should be clamped to 1000, got %d", p.Step)
	}
}
