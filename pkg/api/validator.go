package api

import "errors"

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

// Validate пропускает только четыре шага по осям: диагоналей на острове нет.
func (p DirectionPayload) Validate() error {
	if p.Dx == 0 && p.Dy == 0 {
		return errors.New("movement vector cannot be zero")
	}
	if p.Dx < -1 || p.Dx > 1 || p.Dy < -1 || p.Dy > 1 {
		return errors.New("movement step too large")
	}
	if p.Dx != 0 && p.Dy != 0 {
		return errors.New("diagonal movement is not allowed")
	}
	return nil
}

func (p ResourcePayload) Validate() error {
	if p.Resource == "" {
		return errors.New("resource is required")
	}
	if p.Count <= 0 {
		return errors.New("count must be positive")
	}
	return nil
}

func (p SpawnPayload) Validate() error {
	if p.Template == "" {
		return errors.New("template is required")
	}
	return nil
}
