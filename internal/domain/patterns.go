package domain

import (
	"regexp"
	"strings"
)

var (
	// A comment may be indented by any number of 4-space or tab steps.
	commentPattern = regexp.MustCompile(`^( {4}|\t)*#`)

	// An unindented word followed by ':'. Checked before variablePattern, so
	// `name:=value` with no space before the colon declares a target.
	targetPattern = regexp.MustCompile(`^(?P<target>\w+):`)

	// Assignments are assumed to be unindented. A make variable name can't
	// contain whitespace, ':', '#' or '='.
	variablePattern = regexp.MustCompile(`^(?P<name>[^\s:#=]+?)\s*[?:]?=\s*(?P<value>[^\n\r#]+)`)

	// "# Output: <path>" annotations. Indentation is not required.
	outputCommentPattern = regexp.MustCompile(`#[ \t]*Output[ \t]*:[ \t]*(?P<path>\S+)`)
)

// outputRule recognizes a recipe line that declares where a target writes.
type outputRule struct {
	name    string
	pattern *regexp.Regexp // must capture the path in a group named "path"
}

// outputRules are tried in order and the first match wins.
var outputRules = []outputRule{
	{name: "output comment", pattern: outputCommentPattern},
	// mkdir, taking the last argument
	{name: "mkdir", pattern: regexp.MustCompile(`( {4}|\t)+[@+-]*mkdir\s(?:.*\s)?(?P<path>\S+)\s*$`)},
	// any indented command with a standalone -o flag
	{name: "-o flag", pattern: regexp.MustCompile(`( {4}|\t)+(?:[^\n\r#]*\s)?-o\s+(?P<path>\S+)`)},
}

// match returns the captured path when line matches the rule.
func (r outputRule) match(line string) (string, bool) {
	m := r.pattern.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}

	return m[r.pattern.SubexpIndex("path")], true
}

// lineRule classifies a resolved line and applies it to the parser state.
// apply reports whether the rule claimed the line.
type lineRule struct {
	name  string
	apply func(p *Parser, line string) bool
}

// lineRules are evaluated in order. A line claimed by one rule is never seen
// by the rules after it.
var lineRules = []lineRule{
	{name: "target", apply: (*Parser).declareTarget},
	{name: "variable", apply: (*Parser).assignVariable},
	{name: "output", apply: (*Parser).recordOutput},
}

// isSkippedComment reports whether line is a comment other than an output
// annotation.
func isSkippedComment(line string) bool {
	return commentPattern.MatchString(line) && !outputCommentPattern.MatchString(line)
}

// parseAssignment splits an assignment line into its name and raw value.
func parseAssignment(line string) (name, value string, ok bool) {
	m := variablePattern.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}

	name = m[variablePattern.SubexpIndex("name")]
	value = strings.TrimRight(m[variablePattern.SubexpIndex("value")], " \t")

	return name, value, true
}

// parseTargetName returns the declared target name when line opens a rule.
func parseTargetName(line string) (string, bool) {
	m := targetPattern.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}

	return m[targetPattern.SubexpIndex("target")], true
}
