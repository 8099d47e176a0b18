// Package rules provides a unified interface for attribute rule matching.
// A rule decides whether a named attribute on a given element is covered,
// using exact names, name prefixes, regular expressions, or predicates.
// Rule sets are evaluated uniformly wherever attribute preservation,
// identity, or semantic exclusion is tested.
package rules

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Rule matches attribute names in the context of the element carrying them.
type Rule interface {
	// Matches reports whether the named attribute on el is covered.
	Matches(name string, el *html.Node) bool
	// String returns a human-readable description of the rule.
	String() string
}

// exactRule matches one attribute name exactly.
type exactRule struct {
	name string
}

// Exact creates a rule matching the attribute name exactly.
func Exact(name string) Rule {
	return &exactRule{name: name}
}

func (r *exactRule) Matches(name string, _ *html.Node) bool {
	return name == r.name
}

func (r *exactRule) String() string {
	return r.name
}

// prefixRule matches every attribute name sharing a prefix.
type prefixRule struct {
	prefix string
}

// Prefix creates a rule matching every attribute name with the given prefix.
func Prefix(prefix string) Rule {
	return &prefixRule{prefix: prefix}
}

func (r *prefixRule) Matches(name string, _ *html.Node) bool {
	return strings.HasPrefix(name, r.prefix)
}

func (r *prefixRule) String() string {
	return r.prefix + "*"
}

// patternRule matches attribute names against a compiled regular expression.
type patternRule struct {
	expr     string
	compiled *regexp.Regexp
}

// Pattern creates a rule matching attribute names against a regular
// expression.
func Pattern(expr string) (Rule, error) {
	compiled, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid attribute pattern: %w", err)
	}
	return &patternRule{expr: expr, compiled: compiled}, nil
}

// MustPattern creates a pattern rule and panics if the expression is invalid.
func MustPattern(expr string) Rule {
	r, err := Pattern(expr)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *patternRule) Matches(name string, _ *html.Node) bool {
	return r.compiled.MatchString(name)
}

func (r *patternRule) String() string {
	return "pattern:" + r.expr
}

// predicateRule matches via a caller-supplied function over name and element.
type predicateRule struct {
	fn func(name string, el *html.Node) bool
}

// Predicate creates a rule from a function over the attribute name and the
// element carrying it.
func Predicate(fn func(name string, el *html.Node) bool) Rule {
	return &predicateRule{fn: fn}
}

func (r *predicateRule) Matches(name string, el *html.Node) bool {
	return r.fn(name, el)
}

func (r *predicateRule) String() string {
	return "predicate"
}

// Set evaluates multiple rules; an attribute is covered when any rule
// matches.
type Set []Rule

// Matches reports whether any rule in the set covers the named attribute.
func (s Set) Matches(name string, el *html.Node) bool {
	for _, r := range s {
		if r.Matches(name, el) {
			return true
		}
	}
	return false
}

// Strings returns the descriptions of every rule in the set.
func (s Set) Strings() []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, r.String())
	}
	return out
}

// Parse creates a rule from its textual form: "pattern:<regexp>" compiles a
// pattern rule, "prefix:<name>" a prefix rule, anything else an exact rule.
func Parse(spec string) (Rule, error) {
	switch {
	case strings.HasPrefix(spec, "pattern:"):
		return Pattern(strings.TrimPrefix(spec, "pattern:"))
	case strings.HasPrefix(spec, "prefix:"):
		return Prefix(strings.TrimPrefix(spec, "prefix:")), nil
	default:
		return Exact(spec), nil
	}
}

// MustParse creates a rule from its textual form and panics on error.
func MustParse(spec string) Rule {
	r, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return r
}

// ParseAll creates a set from textual rule forms.
func ParseAll(specs ...string) (Set, error) {
	set := make(Set, 0, len(specs))
	for _, spec := range specs {
		r, err := Parse(spec)
		if err != nil {
			return nil, fmt.Errorf("failed to parse rule %q: %w", spec, err)
		}
		set = append(set, r)
	}
	return set, nil
}
