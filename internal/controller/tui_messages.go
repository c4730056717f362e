package controller

import (
	m "github.com/mouse-blink/makeparse/internal/model"
)

// Message types.
type targetsMsg struct {
	source  m.Path
	targets m.Targets
}

// List item types.
type targetItem struct {
	name      string
	isDefault bool
	output    string
}

func newTargetItem(target m.Target) targetItem {
	return targetItem{
		name:      target.Name,
		isDefault: target.Default,
		output:    outputSummary(target),
	}
}

func (i targetItem) FilterValue() string {
	return i.name
}
