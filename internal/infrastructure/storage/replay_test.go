package storage

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/NagaPranavN/evolol/internal/domain"
)

func sampleSession() *domain.ReplaySession {
	s := &domain.ReplaySession{
		Seed:      42,
		Timestamp: 1700000000,
		Width:     12,
		Height:    9,
		Agents:    8,
		Foods:     4,
		Walls:     4,
		Brain:     json.RawMessage(`{"version":1,"rules":[]}`),
	}
	s.Record(0, domain.CommandTick, json.RawMessage(`{"count":3}`))
	s.Record(3, domain.CommandBrain, json.RawMessage(`{"rules":[{"state":0,"env":"NOTHING","action":"STEP","next":0}]}`))
	s.Record(3, domain.CommandTick, nil)
	return s
}

func TestReplayService_SaveLoad(t *testing.T) {
	svc, err := NewReplayService(filepath.Join(t.TempDir(), "replays"))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	original := sampleSession()
	path, err := svc.Save(original)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if filepath.Ext(path) != ReplayExt {
		t.Errorf("unexpected extension: %s", path)
	}

	loaded, err := svc.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if loaded.Seed != original.Seed || loaded.Width != 12 || loaded.Height != 9 || loaded.Agents != 8 {
		t.Errorf("header mismatch: %+v", loaded)
	}
	if !bytes.Equal(loaded.Brain, original.Brain) {
		t.Errorf("brain mismatch: %s", loaded.Brain)
	}
	if len(loaded.Commands) != 3 {
		t.Fatalf("expected 3 commands, got %d", len(loaded.Commands))
	}
	if loaded.Commands[1].Command != domain.CommandBrain || loaded.Commands[1].Tick != 3 {
		t.Errorf("command 1 mismatch: %+v", loaded.Commands[1])
	}
	if string(loaded.Commands[0].Payload) != `{"count":3}` {
		t.Errorf("payload mismatch: %s", loaded.Commands[0].Payload)
	}
	if len(loaded.Commands[2].Payload) != 0 {
		t.Errorf("empty payload should stay empty, got %q", loaded.Commands[2].Payload)
	}
}

func TestReadBinary_InvalidMagic(t *testing.T) {
	var buf bytes.Buffer
	if err := writeBinary(&buf, sampleSession()); err != nil {
		t.Fatalf("write: %v", err)
	}
	raw := buf.Bytes()
	copy(raw, "NOPE")

	_, err := readBinary(bytes.NewReader(raw))
	if !errors.Is(err, ErrInvalidMagic) {
		t.Errorf("expected ErrInvalidMagic, got %v", err)
	}
}

func TestReadBinary_Truncated(t *testing.T) {
	var buf bytes.Buffer
	if err := writeBinary(&buf, sampleSession()); err != nil {
		t.Fatalf("write: %v", err)
	}
	raw := buf.Bytes()

	if _, err := readBinary(bytes.NewReader(raw[:len(raw)-2])); err == nil {
		t.Error("expected error on truncated file")
	}
}

func TestReadBinary_HugeHeaderCounts(t *testing.T) {
	header := ReplayFileHeader{
		Version:      Version1,
		Width:        10,
		Height:       10,
		CommandCount: math.MaxUint32,
	}
	copy(header.Magic[:], MagicHeader)

	encode := func(h ReplayFileHeader) []byte {
		var buf bytes.Buffer
		if err := binary.Write(&buf, binary.LittleEndian, &h); err != nil {
			t.Fatalf("write header: %v", err)
		}
		return buf.Bytes()
	}

	tests := []struct {
		name     string
		brainLen uint32
	}{
		{"brain over limit", 0xFFFFFFF0},
		{"commands without data", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := header
			h.BrainLen = tt.brainLen
			if _, err := readBinary(bytes.NewReader(encode(h))); err == nil {
				t.Error("expected error for header with counts not backed by data")
			}
		})
	}
}

func TestWriteBinary_RejectsHugeBrain(t *testing.T) {
	s := sampleSession()
	s.Brain = make(json.RawMessage, MaxBrainLen+1)
	if err := writeBinary(&bytes.Buffer{}, s); err == nil {
		t.Error("expected error for brain over MaxBrainLen")
	}
}

func TestWriteBinary_RejectsHugeBoard(t *testing.T) {
	s := sampleSession()
	s.Width = 70000
	if err := writeBinary(&bytes.Buffer{}, s); err == nil {
		t.Error("expected error for board that does not fit header")
	}
}

func TestLoadReplay_MissingFile(t *testing.T) {
	_, err := LoadReplay(filepath.Join(t.TempDir(), "none.evrp"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}
