package engine

import (
	"fmt"
	"time"

	"github.com/NagaPranavN/evolol/pkg/api"
	"github.com/NagaPranavN/evolol/pkg/logger"

	"github.com/sirupsen/logrus"
)

// AddLog добавляет запись в игровой лог движка
func (g *GameEngine) AddLog(text, logType string) {
	g.Logs = append(g.Logs, api.LogEntry{
		ID:        fmt.Sprintf("%d_%d", g.World.Tick, len(g.Logs)),
		Tick:      g.World.Tick,
		Text:      text,
		Type:      logType,
		Timestamp: time.Now().UnixMilli(),
	})
	logger.Log.WithFields(logrus.Fields{
		"tick":      g.World.Tick,
		"component": "game_log",
		"log_type":  logType,
	}).Debug(text)
}

// DrainLogs возвращает накопленный лог и очищает его
func (g *GameEngine) DrainLogs() []api.LogEntry {
	logs := g.Logs
	g.Logs = []api.LogEntry{}
	return logs
}
