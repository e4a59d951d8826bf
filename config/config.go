// Package config holds the immutable settings a tokenizer is built
// from: the language dialect, host conventions such as task tags, and
// presentation preferences.
//
// A Config is a snapshot. Building one copies every mutable input, and
// the tokenizer core never mutates or re-reads it, so a scanner table
// built from a Config keeps behaving identically no matter what the
// host does with its own copies afterwards. Reconfiguration is modeled
// as building a new Config and publishing it through a Notifier.
//
// The package performs no file I/O. Hosts that persist settings parse
// them with their own machinery and hand the result to New.
package config

import (
	"strings"

	"github.com/google/uuid"
)

// Config is an immutable snapshot of tokenizer settings.
type Config struct {
	// ID uniquely identifies this snapshot. Two configs built from
	// identical inputs still get distinct IDs, which lets hosts tell
	// table rebuilds apart.
	ID uuid.UUID

	// Dialect is the language dialect to tokenize.
	Dialect Dialect

	// Conventions are host-ecosystem settings such as task tags.
	Conventions Conventions

	// Prefs are the presentation preferences.
	Prefs *Preferences
}

// Option configures a Config under construction.
type Option func(*Config)

// WithDialect sets the language dialect.
func WithDialect(d Dialect) Option {
	return func(c *Config) {
		c.Dialect = d
	}
}

// WithConventions sets the host conventions.
func WithConventions(conv Conventions) Option {
	return func(c *Config) {
		c.Conventions = conv
	}
}

// WithTaskTags replaces the task-tag words, keeping case sensitivity.
func WithTaskTags(tags ...string) Option {
	return func(c *Config) {
		c.Conventions.TaskTags.Tags = tags
	}
}

// WithCaseInsensitiveTags makes task-tag matching ignore case.
func WithCaseInsensitiveTags() Option {
	return func(c *Config) {
		c.Conventions.TaskTags.CaseSensitive = false
	}
}

// WithPreferences sets the presentation preferences.
func WithPreferences(p *Preferences) Option {
	return func(c *Config) {
		if p != nil {
			c.Prefs = p
		}
	}
}

// New builds a config snapshot from the default settings and the given
// options. Mutable inputs are copied, so later changes to the values
// passed in do not affect the snapshot.
func New(opts ...Option) *Config {
	c := &Config{
		Dialect:     DefaultDialect(),
		Conventions: DefaultConventions(),
		Prefs:       DefaultPreferences(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.ID = uuid.New()
	c.Dialect = c.Dialect.clone()
	c.Conventions.TaskTags = c.Conventions.TaskTags.clone()
	c.Prefs = c.Prefs.clone()
	return c
}

// Default returns a config snapshot with every default setting.
func Default() *Config {
	return New()
}

// Validate reports the first problem that would make this config
// unusable for building a scanner table.
func (c *Config) Validate() error {
	if c.Dialect.Name == "" {
		return &ValidationError{Field: "dialect.name", Message: "must not be empty"}
	}
	for _, kw := range c.Dialect.Keywords {
		if kw == "" {
			return &ValidationError{Field: "dialect.keywords", Message: "empty keyword"}
		}
	}
	for _, tag := range c.Conventions.TaskTags.Tags {
		if tag == "" {
			return &ValidationError{Field: "conventions.taskTags", Message: "empty tag"}
		}
		if strings.ContainsFunc(tag, func(r rune) bool {
			return !isWordRune(r)
		}) {
			return &ValidationError{
				Field:   "conventions.taskTags",
				Message: "tag must be a single word",
				Value:   tag,
			}
		}
	}
	if c.Prefs == nil {
		return &ValidationError{Field: "prefs", Message: "must not be nil"}
	}
	return nil
}

func isWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		return true
	}
	return false
}
