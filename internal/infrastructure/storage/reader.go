package storage

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/NagaPranavN/evolol/internal/domain"
)

func (s *ReplayService) Load(path string) (*domain.ReplaySession, error) {
	return LoadReplay(path)
}

// LoadReplay читает файл реплея по пути
func LoadReplay(path string) (*domain.ReplaySession, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readBinary(bufio.NewReader(f))
}

func readBinary(r io.Reader) (*domain.ReplaySession, error) {
	// 1. Читаем заголовок целиком
	var header ReplayFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Валидация
	if string(header.Magic[:]) != MagicHeader {
		return nil, ErrInvalidMagic
	}
	if header.Version != Version1 {
		return nil, fmt.Errorf("unsupported version: %d (expected %d)", header.Version, Version1)
	}

	session := &domain.ReplaySession{
		Seed:      header.Seed,
		Timestamp: header.Timestamp,
		Width:     int(header.Width),
		Height:    int(header.Height),
		Agents:    int(header.Agents),
		Foods:     int(header.Foods),
		Walls:     int(header.Walls),
		Commands:  make([]domain.ReplayCommand, 0, min(header.CommandCount, commandPrealloc)),
	}

	// Размеры из заголовка не доверенные: память выделяем только под то, что реально прочитано
	if header.BrainLen > MaxBrainLen {
		return nil, fmt.Errorf("brain length %d exceeds limit %d", header.BrainLen, MaxBrainLen)
	}

	// 2. Начальная таблица правил
	if header.BrainLen > 0 {
		session.Brain = make([]byte, header.BrainLen)
		if _, err := io.ReadFull(r, session.Brain); err != nil {
			return nil, fmt.Errorf("failed to read brain: %w", err)
		}
	}

	// 3. Команды
	for i := uint32(0); i < header.CommandCount; i++ {
		var ch CommandHeader
		if err := binary.Read(r, binary.LittleEndian, &ch); err != nil {
			return nil, fmt.Errorf("command %d header: %w", i, err)
		}

		cmd := domain.ReplayCommand{
			Tick:    int(ch.Tick),
			Command: domain.CommandType(ch.Command),
			Payload: json.RawMessage{},
		}
		if ch.PayloadLen > 0 {
			cmd.Payload = make([]byte, ch.PayloadLen)
			if _, err := io.ReadFull(r, cmd.Payload); err != nil {
				return nil, fmt.Errorf("command %d payload: %w", i, err)
			}
		}
		session.Commands = append(session.Commands, cmd)
	}

	return session, nil
}
