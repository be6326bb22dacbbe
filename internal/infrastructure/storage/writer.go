package storage

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/NagaPranavN/evolol/internal/domain"
	"github.com/NagaPranavN/evolol/pkg/logger"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
)

const (
	MagicHeader string = `EVRP` // 4 байта
	Version1    uint32 = 1

	// ReplayExt - расширение файлов реплея
	ReplayExt = ".evrp"

	// MaxBrainLen - предел размера таблицы правил в файле (1 MiB)
	MaxBrainLen = 1 << 20

	// Начальная емкость слайса команд при чтении; дальше растет через append
	commandPrealloc = 1024
)

// ErrInvalidMagic - файл не является реплеем
var ErrInvalidMagic = errors.New("invalid replay magic")

// ReplayFileHeader — точное представление заголовка файла в памяти.
// binary.Write умеет писать это целиком, так как тут нет слайсов и строк, только массивы и числа.
type ReplayFileHeader struct {
	Magic        [4]byte // 4 байта
	Version      uint32  // 4 байта
	Seed         int64   // 8 байт
	Timestamp    int64   // 8 байт
	Width        uint16  // 2 байта
	Height       uint16  // 2 байта
	Agents       uint16  // 2 байта
	Foods        uint16  // 2 байта
	Walls        uint16  // 2 байта
	BrainLen     uint32  // 4 байта
	CommandCount uint32  // 4 байта
}

// CommandHeader — заголовок каждой записи команды.
type CommandHeader struct {
	Tick       int32  // 4
	Command    uint8  // 1
	PayloadLen uint16 // 2
}

type ReplayService struct {
	SaveDir string
}

func NewReplayService(dir string) (*ReplayService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create replay dir: %w", err)
	}
	return &ReplayService{SaveDir: dir}, nil
}

// Save пишет сессию в SaveDir и возвращает путь к файлу
func (s *ReplayService) Save(session *domain.ReplaySession) (string, error) {
	filename := fmt.Sprintf("replay_%d_%d%s", session.Seed, session.Timestamp, ReplayExt)
	path := filepath.Join(s.SaveDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if err := writeBinary(bw, session); err != nil {
		return "", err
	}
	if err := bw.Flush(); err != nil {
		return "", err
	}

	if info, err := f.Stat(); err == nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "replay_storage",
			"path":      path,
			"commands":  len(session.Commands),
			"size":      humanize.Bytes(uint64(info.Size())),
		}).Info("Replay saved.")
	}
	return path, nil
}

func fitsUint16(vals ...int) bool {
	for _, v := range vals {
		if v < 0 || v > math.MaxUint16 {
			return false
		}
	}
	return true
}

func writeBinary(w io.Writer, s *domain.ReplaySession) error {
	if !fitsUint16(s.Width, s.Height, s.Agents, s.Foods, s.Walls) {
		return fmt.Errorf("world dimensions do not fit replay header: %dx%d, %d/%d/%d",
			s.Width, s.Height, s.Agents, s.Foods, s.Walls)
	}

	if len(s.Brain) > MaxBrainLen {
		return fmt.Errorf("brain too long: %d bytes (max %d)", len(s.Brain), MaxBrainLen)
	}

	// 1. Глобальный заголовок
	header := ReplayFileHeader{
		Version:      Version1,
		Seed:         s.Seed,
		Timestamp:    s.Timestamp,
		Width:        uint16(s.Width),
		Height:       uint16(s.Height),
		Agents:       uint16(s.Agents),
		Foods:        uint16(s.Foods),
		Walls:        uint16(s.Walls),
		BrainLen:     uint32(len(s.Brain)),
		CommandCount: uint32(len(s.Commands)),
	}
	copy(header.Magic[:], MagicHeader)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	// 2. Начальная таблица правил
	if len(s.Brain) > 0 {
		if _, err := w.Write(s.Brain); err != nil {
			return fmt.Errorf("failed to write brain: %w", err)
		}
	}

	// 3. Команды
	for _, cmd := range s.Commands {
		payloadLen := len(cmd.Payload)
		if payloadLen > math.MaxUint16 {
			return fmt.Errorf("payload too long: %d", payloadLen)
		}

		cmdHeader := CommandHeader{
			Tick:       int32(cmd.Tick),
			Command:    uint8(cmd.Command),
			PayloadLen: uint16(payloadLen),
		}
		if err := binary.Write(w, binary.LittleEndian, &cmdHeader); err != nil {
			return err
		}
		if payloadLen > 0 {
			if _, err := w.Write(cmd.Payload); err != nil {
				return err
			}
		}
	}

	return nil
}
