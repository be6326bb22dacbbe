package api

import (
	"errors"
	"fmt"
)

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p TickPayload) Validate() error {
	if p.Count < 0 {
		return errors.New("tick count cannot be negative")
	}
	if p.Count > MaxTicksPerCommand {
		return fmt.Errorf("tick count %d exceeds limit %d", p.Count, MaxTicksPerCommand)
	}
	return nil
}

func (p BrainPayload) Validate() error {
	if p.Rules == nil {
		return errors.New("rules are required")
	}
	return nil
}
