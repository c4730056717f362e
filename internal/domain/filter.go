package domain

import (
	"log/slog"
	"regexp"
	"slices"

	m "github.com/mouse-blink/makeparse/internal/model"
)

// Filter narrows a target list by name. A nil pattern set disables its stage.
// Compiled patterns are read-only, so a Filter may be shared between
// goroutines.
type Filter struct {
	exclude []*regexp.Regexp
	include []*regexp.Regexp
}

// NewFilter compiles the exclusion and inclusion patterns. A pattern that
// fails to compile is fatal in strict mode; otherwise it is logged and dropped
// from its set while the rest still apply.
func NewFilter(exclude, include []string, strict bool, logger *slog.Logger) (*Filter, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	excluded, err := compilePatterns(PatternFilter, exclude, strict, logger)
	if err != nil {
		return nil, err
	}

	included, err := compilePatterns(PatternInclude, include, strict, logger)
	if err != nil {
		return nil, err
	}

	return &Filter{exclude: excluded, include: included}, nil
}

func compilePatterns(kind PatternKind, patterns []string, strict bool, logger *slog.Logger) ([]*regexp.Regexp, error) {
	if patterns == nil {
		return nil, nil
	}

	compiled := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			patternErr := &PatternError{Kind: kind, Pattern: pattern, Err: err}
			if strict {
				return nil, patternErr
			}

			logger.Error(patternErr.Error())

			continue
		}

		compiled = append(compiled, re)
	}

	return compiled, nil
}

// Keep reports whether a target named name survives the filter: it matches no
// exclusion pattern and, when an inclusion set is present, at least one
// inclusion pattern.
func (f *Filter) Keep(name string) bool {
	matches := func(re *regexp.Regexp) bool {
		return re.MatchString(name)
	}

	if f.exclude != nil && slices.ContainsFunc(f.exclude, matches) {
		return false
	}

	if f.include != nil {
		return slices.ContainsFunc(f.include, matches)
	}

	return true
}

// Apply returns the targets that survive the filter, in their original order.
func (f *Filter) Apply(targets m.Targets) m.Targets {
	kept := make(m.Targets, 0, len(targets))

	for _, target := range targets {
		if f.Keep(target.Name) {
			kept = append(kept, target)
		}
	}

	return kept
}
