// Package profile loads reconciliation profiles from YAML files and
// converts them into remarkup options. A profile captures a site's
// conventions so the same attribute handling applies across tools.
package profile

import (
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/addaleax/remarkup"
	"github.com/addaleax/remarkup/pkg/errors"
	"github.com/addaleax/remarkup/pkg/rules"
)

// Profile is the YAML form of a reconciliation configuration.
//
// Attribute rules use their textual forms: exact names, "prefix:" name
// prefixes, or "pattern:" regular expressions.
type Profile struct {
	// IdentityAttributes replaces the attribute names whose shared value
	// forces an exact element correspondence.
	IdentityAttributes []string `yaml:"identity_attributes,omitempty"`

	// SemanticAttributes lists attributes whose values the edit is
	// expected to rewrite.
	SemanticAttributes []string `yaml:"semantic_attributes,omitempty"`

	// PreservePatterns adds attributes to the set unmarking keeps.
	PreservePatterns []string `yaml:"preserve_patterns,omitempty"`

	// MissingChildPenalty overrides the per-missing-child alignment cost.
	MissingChildPenalty *float64 `yaml:"missing_child_penalty,omitempty"`
}

// Load reads and validates a profile from a YAML file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, errors.NewParseError("yaml", path, err.Error(), err)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the profile's fields without applying them.
func (p *Profile) Validate() error {
	for _, name := range p.IdentityAttributes {
		if strings.TrimSpace(name) == "" {
			return &errors.ValidationError{
				Field:   "identity_attributes",
				Message: "cannot contain empty names",
			}
		}
	}
	if _, err := rules.ParseAll(p.SemanticAttributes...); err != nil {
		return &errors.ValidationError{
			Field:   "semantic_attributes",
			Message: err.Error(),
		}
	}
	if _, err := rules.ParseAll(p.PreservePatterns...); err != nil {
		return &errors.ValidationError{
			Field:   "preserve_patterns",
			Message: err.Error(),
		}
	}
	if p.MissingChildPenalty != nil && *p.MissingChildPenalty < 0 {
		return &errors.ValidationError{
			Field:   "missing_child_penalty",
			Value:   *p.MissingChildPenalty,
			Message: "cannot be negative",
		}
	}
	return nil
}

// Options converts the profile into remarkup options. Unset fields
// contribute nothing, so defaults stay in effect.
func (p *Profile) Options() []remarkup.Option {
	var opts []remarkup.Option

	if len(p.IdentityAttributes) > 0 {
		opts = append(opts, remarkup.WithIdentityAttributes(p.IdentityAttributes...))
	}
	if len(p.SemanticAttributes) > 0 {
		opts = append(opts, remarkup.WithSemanticPatterns(p.SemanticAttributes...))
	}
	if len(p.PreservePatterns) > 0 {
		opts = append(opts, remarkup.WithPreservePatterns(p.PreservePatterns...))
	}
	if p.MissingChildPenalty != nil {
		opts = append(opts, remarkup.WithMissingChildPenalty(*p.MissingChildPenalty))
	}

	return opts
}
