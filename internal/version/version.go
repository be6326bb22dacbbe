// Package version хранит метаданные сборки, внедряемые через -ldflags:
//
//	go build -ldflags "-X github.com/NagaPranavN/evolol/internal/version.BuildDate=2026-10-18 \
//	  -X github.com/NagaPranavN/evolol/internal/version.BuildCommit=$(git rev-parse --short HEAD)"
package version

import (
	"fmt"
	"runtime"
	"time"
)

// Release - версия формата симуляции (правила, реплеи)
const Release = "0.3.0"

var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
	BuildBranch string
)

// Первый день проекта; номер сборки - число дней от него
var projectEpoch = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

// BuildInfo - метаданные сборки для /version и логов старта
type BuildInfo struct {
	Release     string `json:"release"`
	BuildNumber int    `json:"buildNumber"`
	BuildDate   string `json:"buildDate,omitempty"`
	Commit      string `json:"commit,omitempty"`
	Branch      string `json:"branch,omitempty"`
	GoVersion   string `json:"goVersion"`
	Error       string `json:"error,omitempty"`
}

// BuildNumber считает номер сборки из BuildDate
func BuildNumber() (int, error) {
	if BuildDate == "" {
		return 0, fmt.Errorf("BuildDate is empty")
	}

	t, err := time.ParseInLocation("2006-01-02", BuildDate, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid BuildDate %q: %w", BuildDate, err)
	}
	if t.Before(projectEpoch) {
		return 0, fmt.Errorf("BuildDate %s is before project epoch", BuildDate)
	}

	return int(t.Sub(projectEpoch).Hours() / 24), nil
}

// Info возвращает метаданные сборки. Без -ldflags номер сборки 0, а в Error причина.
func Info() BuildInfo {
	info := BuildInfo{
		Release:   Release,
		BuildDate: BuildDate,
		Commit:    BuildCommit,
		Branch:    BuildBranch,
		GoVersion: runtime.Version(),
	}

	n, err := BuildNumber()
	if err != nil {
		info.Error = err.Error()
		return info
	}
	info.BuildNumber = n
	return info
}

// String - строка для логов
func String() string {
	info := Info()

	if info.Error != "" {
		return fmt.Sprintf("evolol %s (dev build, %s)", info.Release, info.GoVersion)
	}

	return fmt.Sprintf("evolol %s build %d (%s) commit[%s] branch[%s] %s",
		info.Release,
		info.BuildNumber,
		info.BuildDate,
		coalesce(info.Commit, "unknown"),
		coalesce(info.Branch, "unknown"),
		info.GoVersion,
	)
}

func coalesce(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
