// Package controller renders analysis results for people rather than programs.
package controller

import (
	m "github.com/mouse-blink/makeparse/internal/model"
)

// UI defines how results are displayed to a user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayTargets shows the targets extracted from source.
	DisplayTargets(source m.Path, targets m.Targets) error
	// DisplayScan summarizes the Makefiles found by a scan.
	DisplayScan(makefiles []m.Makefile) error
}

// outputSummary joins a target's outputs for one-line display.
func outputSummary(target m.Target) string {
	if !target.HasOutput() {
		return "-"
	}

	summary := target.Output[0]
	for _, output := range target.Output[1:] {
		summary += ", " + output
	}

	return summary
}

func defaultName(targets m.Targets) string {
	if target, ok := targets.Default(); ok {
		return target.Name
	}

	return "-"
}

func shortHash(hash string) string {
	const width = 12
	if len(hash) <= width {
		return hash
	}

	return hash[:width]
}
