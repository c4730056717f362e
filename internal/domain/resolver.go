package domain

import (
	"fmt"
	"log/slog"
	"regexp"
	"slices"
)

// selfVariable is the binding rewritten with the current target's name.
const selfVariable = "@"

// Bindings maps variable names to their unevaluated values.
type Bindings map[string]string

// referenceForms lists the recognized reference syntaxes in priority order.
// Each pattern captures the variable name in group 1.
var referenceForms = []*regexp.Regexp{
	// $@, the only single-character reference accepted
	regexp.MustCompile(`\$(@)`),
	// $(name)
	regexp.MustCompile(`\$\(([^\s:#={}()\[\]/\\]+)\)`),
	// ${name}
	regexp.MustCompile(`\$\{([^\s:#={}()\[\]/\\]+)\}`),
}

// Resolver expands variable references in text using a set of bindings.
type Resolver struct {
	logger *slog.Logger
}

// NewResolver creates a Resolver. A nil logger discards debug output.
func NewResolver(logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Resolver{logger: logger}
}

// Resolve replaces every variable reference in text with its fully resolved
// value. It fails with an UndefinedVariableError when a referenced name has no
// binding and with a RecursiveDependencyError when an expansion reaches a
// variable that is already being expanded.
func (r *Resolver) Resolve(text string, bindings Bindings) (string, error) {
	return r.resolve(text, bindings, nil)
}

// resolve expands text while chain holds the names currently being expanded.
func (r *Resolver) resolve(text string, bindings Bindings, chain []string) (string, error) {
	for {
		start, end, name, found := findReference(text)
		if !found {
			return text, nil
		}

		r.logger.Debug("found variable", "name", name, "reference", text[start:end])

		if slices.Contains(chain, name) {
			return "", &RecursiveDependencyError{Name: name, Chain: slices.Clone(chain)}
		}

		value, ok := bindings[name]
		if !ok {
			return "", &UndefinedVariableError{Name: name}
		}

		expanded, err := r.resolve(value, bindings, append(slices.Clone(chain), name))
		if err != nil {
			return "", fmt.Errorf("failure to parse variable %s: %w", name, err)
		}

		r.logger.Debug("replacing variable", "reference", text[start:end], "value", expanded)
		text = text[:start] + expanded + text[end:]
	}
}

// findReference returns the span and name of the leftmost reference in text.
// When two forms start at the same offset the earlier form in referenceForms
// wins.
func findReference(text string) (start, end int, name string, found bool) {
	for _, form := range referenceForms {
		loc := form.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}

		if !found || loc[0] < start {
			start, end, name, found = loc[0], loc[1], text[loc[2]:loc[3]], true
		}
	}

	return start, end, name, found
}
