// Package brainfile читает и пишет таблицы правил (Brain) в JSON.
// Таблица - это данные, а не код: ее можно загрузить, отредактировать
// или сгенерировать без перекомпиляции движка.
package brainfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/NagaPranavN/evolol/internal/domain"
	"github.com/NagaPranavN/evolol/pkg/api"
)

// CurrentVersion - версия формата файла
const CurrentVersion = 1

// ErrInvalidRule - неизвестное имя Env или Action в правиле
var ErrInvalidRule = errors.New("invalid rule")

// File - корневой объект файла правил.
type File struct {
	Version int            `json:"version" jsonschema:"title=Format version,minimum=1"`
	Rules   []api.RuleView `json:"rules" jsonschema:"title=Rules,description=Ordered transition table; the first rule matching (state, env) wins"`
}

// Decode читает файл правил и собирает Brain
func Decode(r io.Reader) (*domain.Brain, error) {
	var f File
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode brain file: %w", err)
	}
	if f.Version != 0 && f.Version != CurrentVersion {
		return nil, fmt.Errorf("unsupported brain file version: %d (expected %d)", f.Version, CurrentVersion)
	}
	return ToBrain(f.Rules)
}

// Load читает файл правил с диска
func Load(path string) (*domain.Brain, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// Encode пишет Brain в формате файла правил
func Encode(w io.Writer, b *domain.Brain) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(File{Version: CurrentVersion, Rules: FromBrain(b)})
}

// Marshal - Encode в срез байт (для реплеев и истории)
func Marshal(b *domain.Brain) (json.RawMessage, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, b); err != nil {
		return nil, err
	}
	return bytes.TrimSpace(buf.Bytes()), nil
}

// ToBrain конвертирует текстовые правила в Brain, сохраняя порядок
func ToBrain(views []api.RuleView) (*domain.Brain, error) {
	rules := make([]domain.Rule, 0, len(views))
	for i, v := range views {
		env, ok := domain.ParseEnv(v.Env)
		if !ok {
			return nil, fmt.Errorf("rule %d: unknown env %q: %w", i, v.Env, ErrInvalidRule)
		}
		act, ok := domain.ParseAction(v.Action)
		if !ok {
			return nil, fmt.Errorf("rule %d: unknown action %q: %w", i, v.Action, ErrInvalidRule)
		}
		rules = append(rules, domain.Rule{
			State:  domain.State(v.State),
			Env:    env,
			Action: act,
			Next:   domain.State(v.Next),
		})
	}
	return domain.NewBrain(rules...), nil
}

// FromBrain конвертирует Brain в текстовые правила
func FromBrain(b *domain.Brain) []api.RuleView {
	rules := b.Rules()
	views := make([]api.RuleView, 0, len(rules))
	for _, r := range rules {
		views = append(views, api.RuleView{
			State:  int(r.State),
			Env:    r.Env.String(),
			Action: r.Action.String(),
			Next:   int(r.Next),
		})
	}
	return views
}

// DefaultBrain - встроенная таблица "собирателя", если файл правил не задан.
// Состояние 0 - поиск, 1 - только что поел.
func DefaultBrain() *domain.Brain {
	return domain.NewBrain(
		domain.Rule{State: 0, Env: domain.EnvFood, Action: domain.ActionEat, Next: 1},
		domain.Rule{State: 0, Env: domain.EnvNothing, Action: domain.ActionStep, Next: 0},
		domain.Rule{State: 0, Env: domain.EnvAgent, Action: domain.ActionAttack, Next: 0},
		domain.Rule{State: 1, Env: domain.EnvNothing, Action: domain.ActionStep, Next: 0},
		domain.Rule{State: 1, Env: domain.EnvAgent, Action: domain.ActionNop, Next: 0},
		domain.Rule{State: 1, Env: domain.EnvFood, Action: domain.ActionEat, Next: 1},
	)
}
