package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors matched with errors.Is.
var (
	ErrUndefinedVariable   = errors.New("undefined variable")
	ErrRecursiveDependency = errors.New("recursive variable dependency")
	ErrInvalidPattern      = errors.New("invalid pattern")
	ErrTargetNotFound      = errors.New("target not found")
)

// UndefinedVariableError reports a reference to a variable with no binding.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("no variable '%s'", e.Name)
}

func (e *UndefinedVariableError) Unwrap() error {
	return ErrUndefinedVariable
}

// RecursiveDependencyError reports a variable whose expansion reaches itself.
type RecursiveDependencyError struct {
	Name  string
	Chain []string // names being expanded when the cycle was found
}

func (e *RecursiveDependencyError) Error() string {
	return fmt.Sprintf("variable %s has a recursive dependency", e.Name)
}

func (e *RecursiveDependencyError) Unwrap() error {
	return ErrRecursiveDependency
}

// LineError attributes an error to a line of a parsed file.
type LineError struct {
	Path string
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s:%d: line variable expansion failed: %v", e.Path, e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// PatternKind tells which filter set a pattern belongs to.
type PatternKind string

const (
	// PatternFilter marks an exclusion pattern.
	PatternFilter PatternKind = "filter"
	// PatternInclude marks an inclusion pattern.
	PatternInclude PatternKind = "include"
)

// PatternError reports a user supplied pattern that failed to compile.
type PatternError struct {
	Kind    PatternKind
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("failed to apply user %s '%s': %v", e.Kind, e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() []error {
	return []error{ErrInvalidPattern, e.Err}
}

// TargetNotFoundError reports a lookup of a target name absent from a file.
type TargetNotFoundError struct {
	Name       string
	Path       string
	Suggestion string // closest known target name, if any
}

func (e *TargetNotFoundError) Error() string {
	msg := fmt.Sprintf("no target %q in %s", e.Name, e.Path)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}

	return msg
}

func (e *TargetNotFoundError) Unwrap() error {
	return ErrTargetNotFound
}
