package engine

import (
	"encoding/json"
	"fmt"

	"github.com/NagaPranavN/evolol/internal/domain"
	"github.com/NagaPranavN/evolol/internal/infrastructure/brainfile"
	"github.com/NagaPranavN/evolol/pkg/api"
)

// decodePayload разбирает и валидирует payload команды.
// Пустой payload дает нулевое значение T.
func decodePayload[T api.Validator](raw json.RawMessage) (T, error) {
	var p T
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &p); err != nil {
			return p, fmt.Errorf("invalid payload: %w", err)
		}
	}
	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

// applyCommand исполняет изменяющую мир команду на движке.
// Возвращает нормализованный payload для записи в реплей.
// onTick вызывается после каждого тика (может быть nil).
func applyCommand(g *GameEngine, cmd domain.CommandType, raw json.RawMessage, onTick func(TickReport)) (json.RawMessage, error) {
	switch cmd {
	case domain.CommandTick:
		p, err := decodePayload[api.TickPayload](raw)
		if err != nil {
			return nil, err
		}
		if p.Count == 0 {
			p.Count = 1
		}
		for i := 0; i < p.Count; i++ {
			report := g.Tick()
			if onTick != nil {
				onTick(report)
			}
		}
		return json.Marshal(p)

	case domain.CommandBrain:
		p, err := decodePayload[api.BrainPayload](raw)
		if err != nil {
			return nil, err
		}
		brain, err := brainfile.ToBrain(p.Rules)
		if err != nil {
			return nil, err
		}
		g.ReplaceBrain(brain)
		return json.Marshal(api.BrainPayload{Rules: brainfile.FromBrain(brain)})
	}

	return nil, fmt.Errorf("command %s does not mutate the world", cmd)
}
