package seocheck

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Options configures the SEO pass. The zero value is not useful on its own;
// checker.NewWithDefaults merges it over the built-in defaults.
type Options struct {
	// IgnoreFiles lists exact paths that are never inspected.
	IgnoreFiles []string `yaml:"ignoreFiles,omitempty"`

	// ToInspect holds regular expressions; a path is inspected when it matches any of them.
	ToInspect StringList `yaml:"toInspect,omitempty"`

	// TrailingSlash appends "/" to canonical URLs that do not point at an .html file.
	TrailingSlash *bool `yaml:"trailingSlash,omitempty"`

	// Lengths maps an attribute to its maximum length in characters.
	Lengths LengthLimits `yaml:"lengths,omitempty"`

	SEO     SEOOptions     `yaml:"seo"`
	OGP     OGPOptions     `yaml:"ogp"`
	Twitter TwitterOptions `yaml:"twitter"`

	// CanonicalBase prefixes every derived canonical URL.
	CanonicalBase string `yaml:"canonicalBase,omitempty"`

	// Values marks attributes as required or injects literal defaults.
	Values ValueRules `yaml:"values,omitempty"`

	// Content controls how the loader discovers files on disk.
	Content ContentOptions `yaml:"content"`
}

// SEOOptions holds defaults for the seo block of each record.
// A nil string is unset; an explicit "" turns the default off.
type SEOOptions struct {
	Title       *bool   `yaml:"title,omitempty"`
	Description *string `yaml:"description,omitempty"`
	Keywords    *string `yaml:"keywords,omitempty"`
	Robots      *string `yaml:"robots,omitempty"`
}

// UnmarshalYAML implements yaml.Unmarshaler. A string option set to false is unset.
func (o *SEOOptions) UnmarshalYAML(node *yaml.Node) error {
	type plain SEOOptions
	if err := node.Decode((*plain)(o)); err != nil {
		return err
	}
	clearFalse(node, map[string]**string{
		"description": &o.Description,
		"keywords":    &o.Keywords,
		"robots":      &o.Robots,
	})
	return nil
}

// OGPOptions holds Open Graph defaults.
type OGPOptions struct {
	DefaultType        *string `yaml:"defaultType,omitempty"`
	DefaultImage       *string `yaml:"defaultImage,omitempty"`
	IgnoreMissingImage *bool   `yaml:"ignoreMissingImage,omitempty"`
}

// UnmarshalYAML implements yaml.Unmarshaler. `defaultImage: false` means no
// default image.
func (o *OGPOptions) UnmarshalYAML(node *yaml.Node) error {
	type plain OGPOptions
	if err := node.Decode((*plain)(o)); err != nil {
		return err
	}
	clearFalse(node, map[string]**string{
		"defaultType":  &o.DefaultType,
		"defaultImage": &o.DefaultImage,
	})
	return nil
}

// TwitterOptions holds Twitter card defaults.
type TwitterOptions struct {
	SiteURL *string `yaml:"siteurl,omitempty"`
	Card    *string `yaml:"card,omitempty"`
	Site    *string `yaml:"site,omitempty"`
	Image   *string `yaml:"image,omitempty"`
}

// UnmarshalYAML implements yaml.Unmarshaler. A string option set to false is unset.
func (o *TwitterOptions) UnmarshalYAML(node *yaml.Node) error {
	type plain TwitterOptions
	if err := node.Decode((*plain)(o)); err != nil {
		return err
	}
	clearFalse(node, map[string]**string{
		"siteurl": &o.SiteURL,
		"card":    &o.Card,
		"site":    &o.Site,
		"image":   &o.Image,
	})
	return nil
}

// clearFalse resets every field whose mapping value in node is the boolean
// false. yaml.v3 decodes such a scalar into a string as "false".
func clearFalse(node *yaml.Node, fields map[string]**string) {
	if node.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		field, ok := fields[k.Value]
		if !ok || v.Kind != yaml.ScalarNode || v.ShortTag() != "!!bool" {
			continue
		}
		var b bool
		if err := v.Decode(&b); err == nil && !b {
			*field = nil
		}
	}
}

// ContentOptions configures content discovery.
type ContentOptions struct {
	// Exclude holds doublestar globs, relative to the content root, skipped while walking.
	Exclude []string `yaml:"exclude,omitempty"`
}

// TrailingSlashEnabled reports whether canonical URLs get a trailing slash.
func (o Options) TrailingSlashEnabled() bool {
	return o.TrailingSlash != nil && *o.TrailingSlash
}

// IgnoresMissingImage reports whether a missing Open Graph image is tolerated.
func (o OGPOptions) IgnoresMissingImage() bool {
	return o.IgnoreMissingImage != nil && *o.IgnoreMissingImage
}

// Bool returns a pointer to b, for filling optional boolean options.
func Bool(b bool) *bool {
	return &b
}

// String returns a pointer to s, for filling optional string options.
func String(s string) *string {
	return &s
}

// StringValue returns the string p points to, or "" when p is nil.
func StringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// StringList decodes from either a single YAML scalar or a sequence of scalars.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var v string
		if err := node.Decode(&v); err != nil {
			return err
		}
		*s = StringList{v}
		return nil
	case yaml.SequenceNode:
		var v []string
		if err := node.Decode(&v); err != nil {
			return err
		}
		*s = v
		return nil
	default:
		return fmt.Errorf("line %d: expected a string or a list of strings", node.Line)
	}
}

// LengthLimit caps the length of one attribute.
type LengthLimit struct {
	Attribute string
	Max       int
}

// LengthLimits is an ordered list of limits. Order follows the configuration
// file and decides which violation is reported first for a file.
type LengthLimits []LengthLimit

// Get returns the limit configured for attr.
func (l LengthLimits) Get(attr string) (int, bool) {
	for _, lim := range l {
		if lim.Attribute == attr {
			return lim.Max, true
		}
	}
	return 0, false
}

// UnmarshalYAML implements yaml.Unmarshaler, keeping mapping order.
func (l *LengthLimits) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: lengths must be a mapping of attribute to max length", node.Line)
	}
	out := make(LengthLimits, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var lim LengthLimit
		if err := node.Content[i].Decode(&lim.Attribute); err != nil {
			return err
		}
		if err := node.Content[i+1].Decode(&lim.Max); err != nil {
			return fmt.Errorf("lengths.%s: %w", lim.Attribute, err)
		}
		out = append(out, lim)
	}
	*l = out
	return nil
}

// MarshalYAML implements yaml.Marshaler, keeping order.
func (l LengthLimits) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, lim := range l {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: lim.Attribute},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprint(lim.Max)},
		)
	}
	return node, nil
}

// ValueRule either requires an attribute or supplies a default for it.
type ValueRule struct {
	Attribute string
	Required  bool
	Default   any
}

// ValueRules is an ordered list of rules, evaluated in configuration order.
type ValueRules []ValueRule

// UnmarshalYAML implements yaml.Unmarshaler. A value of boolean true marks
// the attribute as required; any other value is a literal default.
func (v *ValueRules) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: values must be a mapping of attribute to true or a default", node.Line)
	}
	out := make(ValueRules, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var rule ValueRule
		if err := node.Content[i].Decode(&rule.Attribute); err != nil {
			return err
		}
		var raw any
		if err := node.Content[i+1].Decode(&raw); err != nil {
			return fmt.Errorf("values.%s: %w", rule.Attribute, err)
		}
		if b, ok := raw.(bool); ok && b {
			rule.Required = true
		} else {
			rule.Default = raw
		}
		out = append(out, rule)
	}
	*v = out
	return nil
}

// MarshalYAML implements yaml.Marshaler, keeping order.
func (v ValueRules) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, rule := range v {
		var val yaml.Node
		var raw any = rule.Default
		if rule.Required {
			raw = true
		}
		if err := val.Encode(raw); err != nil {
			return nil, fmt.Errorf("values.%s: %w", rule.Attribute, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: rule.Attribute},
			&val,
		)
	}
	return node, nil
}
