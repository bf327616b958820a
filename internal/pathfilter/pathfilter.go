// Package pathfilter evaluates candidate paths against an ordered chain of
// accept/reject regular-expression rules.
package pathfilter

import (
	"errors"
	"fmt"

	"github.com/dlclark/regexp2"
	"github.com/taigrr/get-randomfile/internal/types"
)

// ErrInvalidPattern indicates a rule pattern that does not compile.
var ErrInvalidPattern = errors.New("invalid pattern")

// Decision is the outcome of evaluating one rule, or the whole chain.
type Decision uint8

const (
	// Continue means the rule did not decide; evaluation moves on.
	Continue Decision = iota
	// Accept means every rule passed.
	Accept
	// Reject means a rule dropped the path.
	Reject
)

func (d Decision) String() string {
	switch d {
	case Accept:
		return "accept"
	case Reject:
		return "reject"
	default:
		return "continue"
	}
}

type compiledRule struct {
	source types.Rule
	re     *regexp2.Regexp
}

// Chain is a compiled, ordered list of filter rules.
type Chain struct {
	rules []compiledRule
}

// New compiles rules into a Chain. An empty rule list gets the default
// accept-everything rule. Every pattern is compiled up front, including
// patterns of rules with an unknown mode.
func New(rules []types.Rule) (*Chain, error) {
	if len(rules) == 0 {
		rules = []types.Rule{types.DefaultRule()}
	}

	compiled := make([]compiledRule, 0, len(rules))
	for _, rule := range rules {
		re, err := regexp2.Compile(rule.Pattern, regexp2.None)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrInvalidPattern, rule.Pattern, err)
		}
		compiled = append(compiled, compiledRule{source: rule, re: re})
	}

	return &Chain{rules: compiled}, nil
}

// Rules returns the effective rules in evaluation order.
func (c *Chain) Rules() []types.Rule {
	out := make([]types.Rule, len(c.rules))
	for i, r := range c.rules {
		out[i] = r.source
	}
	return out
}

// matches reports whether the pattern matches anywhere in path.
func (r compiledRule) matches(path string) bool {
	ok, err := r.re.MatchString(path)
	if err != nil {
		return false
	}
	return ok
}

// step evaluates a single rule. It never returns Accept.
func (r compiledRule) step(path string) Decision {
	switch r.source.Mode {
	case types.ModeAccept:
		if !r.matches(path) {
			return Reject
		}
	case types.ModeReject:
		if r.matches(path) {
			return Reject
		}
	}
	return Continue
}

// Evaluate runs path through the chain in order and stops at the first
// rule that rejects it.
func (c *Chain) Evaluate(path string) Decision {
	for _, rule := range c.rules {
		if d := rule.step(path); d != Continue {
			return d
		}
	}
	return Accept
}

// IsAllowed checks if a path passes every rule of the chain.
func (c *Chain) IsAllowed(path string) bool {
	return c.Evaluate(path) == Accept
}
