package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/NagaPranavN/evolol/internal/infrastructure/storage"

	"github.com/dustin/go-humanize"
)

func main() {
	if len(os.Args) < 3 {
		printHelp()
		return
	}

	switch os.Args[1] {
	case "info":
		info(os.Args[2])
	case "commands":
		commands(os.Args[2])
	case "time":
		ts, err := strconv.ParseInt(os.Args[2], 10, 64)
		if err != nil {
			fmt.Printf("Invalid timestamp: %v\n", err)
			return
		}
		t := time.Unix(ts, 0)
		fmt.Printf("%s (%s)\n", t.Format(time.RFC3339), humanize.Time(t))
	default:
		printHelp()
	}
}

func info(path string) {
	session, err := storage.LoadReplay(path)
	if err != nil {
		fmt.Printf("Failed to read replay: %v\n", err)
		os.Exit(1)
	}
	stat, err := os.Stat(path)
	if err != nil {
		fmt.Printf("Failed to stat replay: %v\n", err)
		os.Exit(1)
	}

	ticks := 0
	if n := len(session.Commands); n > 0 {
		ticks = session.Commands[n-1].Tick
	}

	recorded := time.Unix(session.Timestamp, 0)
	fmt.Printf("file:      %s (%s)\n", path, humanize.Bytes(uint64(stat.Size())))
	fmt.Printf("recorded:  %s (%s)\n", recorded.Format(time.RFC3339), humanize.Time(recorded))
	fmt.Printf("seed:      %d\n", session.Seed)
	fmt.Printf("board:     %dx%d\n", session.Width, session.Height)
	fmt.Printf("entities:  agents=%d food=%d walls=%d\n", session.Agents, session.Foods, session.Walls)
	fmt.Printf("brain:     %s\n", humanize.Bytes(uint64(len(session.Brain))))
	fmt.Printf("commands:  %s (last at tick %d)\n", humanize.Comma(int64(len(session.Commands))), ticks)
}

func commands(path string) {
	session, err := storage.LoadReplay(path)
	if err != nil {
		fmt.Printf("Failed to read replay: %v\n", err)
		os.Exit(1)
	}
	for i, cmd := range session.Commands {
		fmt.Printf("%4d  tick=%-6d %-6s %s\n", i, cmd.Tick, cmd.Command, cmd.Payload)
	}
}

func printHelp() {
	fmt.Println(`Replay Info - просмотр файлов реплея (.evrp)
Commands:
  info <file>        - заголовок реплея: сид, доска, количество команд
  commands <file>    - лента команд (тик, тип, payload)
  time <timestamp>   - преобразовать Unix время из заголовка в читаемый формат`)
}
