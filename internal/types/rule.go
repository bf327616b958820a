package types

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Mode tags a filter rule as a required-match or forbidden-match gate.
type Mode uint8

const (
	// ModeUnknown is an unrecognized mode. Rules carrying it are skipped.
	ModeUnknown Mode = iota
	// ModeAccept drops every path the pattern does not match.
	ModeAccept
	// ModeReject drops every path the pattern matches.
	ModeReject
)

// DefaultPattern matches every path.
const DefaultPattern = ".*"

type (
	// Rule is one filter rule. Rules are evaluated in the order given.
	Rule struct {
		Mode    Mode   `yaml:"mode"`
		Pattern string `yaml:"pattern"`
	}
)

// ParseMode maps a mode name to a Mode. Unknown names yield ModeUnknown.
func ParseMode(s string) Mode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "accept", "include":
		return ModeAccept
	case "reject", "exclude":
		return ModeReject
	default:
		return ModeUnknown
	}
}

func (m Mode) String() string {
	switch m {
	case ModeAccept:
		return "accept"
	case ModeReject:
		return "reject"
	default:
		return "unknown"
	}
}

// MarshalYAML renders the mode by name.
func (m Mode) MarshalYAML() (any, error) {
	return m.String(), nil
}

// DefaultRule returns the accept-everything rule used when no rules are given.
func DefaultRule() Rule {
	return Rule{Mode: ModeAccept, Pattern: DefaultPattern}
}

// String renders the rule as a single-line YAML flow mapping,
// e.g. {mode: accept, pattern: .*}.
func (r Rule) String() string {
	var node yaml.Node
	if err := node.Encode(r); err != nil {
		return fmt.Sprintf("{mode: %s, pattern: %q}", r.Mode, r.Pattern)
	}
	node.Style = yaml.FlowStyle

	out, err := yaml.Marshal(&node)
	if err != nil {
		return fmt.Sprintf("{mode: %s, pattern: %q}", r.Mode, r.Pattern)
	}
	return strings.TrimSpace(string(out))
}
