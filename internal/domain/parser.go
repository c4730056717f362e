package domain

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	m "github.com/mouse-blink/makeparse/internal/model"
)

// maxLineSize bounds a single line read from a Makefile.
const maxLineSize = 1024 * 1024

// Parser extracts targets from a Makefile line by line. A Parser owns its
// bindings and target list for the duration of one parse and is not safe for
// concurrent use.
type Parser struct {
	targets  m.Targets
	bindings Bindings
	resolver *Resolver
	strict   bool
	logger   *slog.Logger
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithStrict makes variable resolution failures abort the parse instead of
// skipping the offending line.
func WithStrict(strict bool) ParserOption {
	return func(p *Parser) {
		p.strict = strict
	}
}

// WithLogger sets the logger used for debug and warning output.
func WithLogger(logger *slog.Logger) ParserOption {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewParser creates a Parser.
func NewParser(options ...ParserOption) *Parser {
	p := &Parser{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, option := range options {
		option(p)
	}

	p.resolver = NewResolver(p.logger)
	p.reset()

	return p
}

// ParseFile opens the Makefile at path and parses it.
func (p *Parser) ParseFile(path string) (targets m.Targets, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't open %s: %w", path, err)
	}

	defer func() {
		if closeErr := file.Close(); err == nil && closeErr != nil {
			err = closeErr
		}
	}()

	return p.Parse(path, file)
}

// Parse reads a Makefile from r and returns its targets in declaration order.
// name is used to attribute errors and log lines. Each call starts from empty
// state, so parsing the same input twice gives the same result.
func (p *Parser) Parse(name string, r io.Reader) (m.Targets, error) {
	p.reset()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++

		if err := p.parseLine(name, lineNumber, scanner.Text()); err != nil {
			return nil, err
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read from %s: %w", name, err)
	}

	targets := p.targets
	p.targets = m.Targets{}

	return targets, nil
}

func (p *Parser) reset() {
	p.targets = m.Targets{}
	p.bindings = make(Bindings)
}

func (p *Parser) parseLine(name string, lineNumber int, line string) error {
	p.logger.Debug("line", "file", name, "line", lineNumber, "text", line)

	if isSkippedComment(line) {
		return nil
	}

	resolved, err := p.resolver.Resolve(line, p.bindings)
	if err != nil {
		lineErr := &LineError{Path: name, Line: lineNumber, Err: err}
		if p.strict {
			return lineErr
		}

		p.logger.Warn("skipping line", "error", lineErr)

		return nil
	}

	for _, rule := range lineRules {
		if rule.apply(p, resolved) {
			p.logger.Debug("classified line", "line", lineNumber, "rule", rule.name)

			return nil
		}
	}

	return nil
}

func (p *Parser) declareTarget(line string) bool {
	name, ok := parseTargetName(line)
	if !ok {
		return false
	}

	target := m.NewTarget(name)
	target.Default = len(p.targets) == 0

	p.targets = append(p.targets, target)
	p.bindings[selfVariable] = name

	p.logger.Debug("found target", "target", name, "default", target.Default)

	return true
}

func (p *Parser) assignVariable(line string) bool {
	name, value, ok := parseAssignment(line)
	if !ok {
		return false
	}

	p.bindings[name] = value
	p.logger.Debug("bound variable", "name", name, "value", value)

	return true
}

// recordOutput stores the first detected output of the current target. It
// only fires while that target has no output yet.
func (p *Parser) recordOutput(line string) bool {
	if len(p.targets) == 0 {
		return false
	}

	current := &p.targets[len(p.targets)-1]
	if current.HasOutput() {
		return false
	}

	for _, rule := range outputRules {
		path, ok := rule.match(line)
		if !ok {
			continue
		}

		current.Output = append(current.Output, path)
		p.logger.Debug("found output", "target", current.Name, "rule", rule.name, "output", path)

		return true
	}

	return false
}
