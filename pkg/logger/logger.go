package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log - общий логгер симуляции и сервера.
// До вызова Init пишет в stderr с уровнем info.
var Log = logrus.New()

// Init настраивает Log из окружения и направляет его в stdout. Вызывается из main.
func Init() {
	InitWithOutput(os.Stdout)
}

// InitWithOutput - Init с произвольным приемником (тесты, CLI-утилиты).
//
//	LOG_LEVEL  - уровень logrus, по умолчанию info (debug включает трассировку восприятия)
//	LOG_FORMAT - json или text
//	NO_COLOR   - отключает цвета в text
func InitWithOutput(out io.Writer) {
	Log = logrus.New()
	Log.SetLevel(levelFromEnv())
	Log.SetFormatter(formatterFromEnv())
	Log.SetOutput(out)
}

// Component возвращает запись с полем component, общим для всех подсистем
func Component(name string) *logrus.Entry {
	return Log.WithField("component", name)
}

func levelFromEnv() logrus.Level {
	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

func formatterFromEnv() logrus.Formatter {
	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
		return &logrus.JSONFormatter{}
	}
	_, noColor := os.LookupEnv("NO_COLOR")
	return &logrus.TextFormatter{
		FullTimestamp: true,
		ForceColors:   !noColor,
		DisableColors: noColor,
	}
}
