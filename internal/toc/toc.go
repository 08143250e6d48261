// Package toc selects the headings of a page that belong in its table of contents.
package toc

import (
	"fmt"

	"github.com/ChrisShen93/xstate/internal/foundation/errors"
)

// Heading levels span h1..h6.
const (
	MinHeadingLevel = 1
	MaxHeadingLevel = 6
)

// Heading is one heading of a page, as supplied by the content parser.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
	ID    string `json:"id"`
}

// Config bounds the heading levels included in a TOC.
type Config struct {
	MinLevel int `json:"min_level" yaml:"min_level" toml:"min_level"`
	MaxLevel int `json:"max_level" yaml:"max_level" toml:"max_level"`
}

// DefaultConfig includes h2 and h3.
func DefaultConfig() Config {
	return Config{MinLevel: 2, MaxLevel: 3}
}

// NewConfig validates 1 <= min <= max <= 6.
func NewConfig(minLevel, maxLevel int) (Config, error) {
	cfg := Config{MinLevel: minLevel, MaxLevel: maxLevel}
	return cfg, cfg.Validate()
}

// Validate checks the level bounds.
func (c Config) Validate() error {
	if c.MinLevel < MinHeadingLevel || c.MaxLevel > MaxHeadingLevel || c.MinLevel > c.MaxLevel {
		return errors.ConfigError(errors.CodeInvalidTOC,
			fmt.Sprintf("toc levels must satisfy %d <= min_level <= max_level <= %d", MinHeadingLevel, MaxHeadingLevel)).
			WithContext("min_level", c.MinLevel).
			WithContext("max_level", c.MaxLevel).
			Build()
	}
	return nil
}

// Filter keeps the headings whose level lies within cfg, in document order.
// It never fails; an empty result is a valid, empty TOC.
func Filter(headings []Heading, cfg Config) []Heading {
	out := make([]Heading, 0, len(headings))
	for _, h := range headings {
		if h.Level >= cfg.MinLevel && h.Level <= cfg.MaxLevel {
			out = append(out, h)
		}
	}
	return out
}

// Node is a heading with the headings nested under it.
type Node struct {
	Heading
	Children []*Node `json:"children,omitempty"`
}

// Nest arranges a flat heading list into a tree: each heading becomes a
// child of the closest preceding heading with a lower level.
func Nest(headings []Heading) []*Node {
	var roots []*Node
	var stack []*Node
	for _, h := range headings {
		n := &Node{Heading: h}
		for len(stack) > 0 && stack[len(stack)-1].Level >= h.Level {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			roots = append(roots, n)
		} else {
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, n)
		}
		stack = append(stack, n)
	}
	return roots
}
