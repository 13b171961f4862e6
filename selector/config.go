package selector

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Mode decides where queries come from when no fixed term is set.
type Mode int

const (
	// ModeFree draws queries from the word list.
	ModeFree Mode = iota
	// ModeGenreCycle draws queries from the genre set.
	ModeGenreCycle
)

func (m Mode) String() string {
	switch m {
	case ModeFree:
		return "free"
	case ModeGenreCycle:
		return "genre-cycle"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts the names produced by Mode.String, case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "free", "none", "":
		return ModeFree, nil
	case "genre-cycle", "genre", "genres", "cycle":
		return ModeGenreCycle, nil
	default:
		return ModeFree, fmt.Errorf("unknown mode %q", s)
	}
}

// ErrConfig is matched by every *ConfigError.
var ErrConfig = errors.New("invalid query configuration")

// ConfigError means the configuration can not produce a query in the requested way.
// It is recoverable; the caller should report it and leave the configuration alone.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid query configuration: " + e.Reason
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// QueryConfig is everything the selector needs to produce the next query.
type QueryConfig struct {
	// FixedTerm, when present and not blank, overrides both modes.
	FixedTerm mo.Option[string]

	Mode Mode

	// Genres is ordered; the order matters for reproducible selection.
	Genres []string

	// CurrentGenre is None until the first genre has been picked.
	CurrentGenre mo.Option[string]
}

// Term returns the fixed term if it is set to something other than whitespace.
func (c QueryConfig) Term() (string, bool) {
	term, ok := c.FixedTerm.Get()
	if !ok || strings.TrimSpace(term) == "" {
		return "", false
	}
	return term, true
}

// WithKeyword sets the fixed term. A blank keyword clears it.
func (c QueryConfig) WithKeyword(term string) QueryConfig {
	term = strings.TrimSpace(term)
	if term == "" {
		c.FixedTerm = mo.None[string]()
	} else {
		c.FixedTerm = mo.Some(term)
	}
	return c
}

// WithGenres replaces the genre set.
// The current genre is dropped if it is not part of the new set.
func (c QueryConfig) WithGenres(genres []string) QueryConfig {
	c.Genres = lo.Uniq(lo.Filter(genres, func(g string, _ int) bool {
		return strings.TrimSpace(g) != ""
	}))

	if current, ok := c.CurrentGenre.Get(); ok && !lo.Contains(c.Genres, current) {
		c.CurrentGenre = mo.None[string]()
	}
	return c
}

// Validate checks the config against the requirements of its mode.
func (c QueryConfig) Validate() error {
	if _, ok := c.Term(); ok {
		return nil
	}

	if c.Mode != ModeGenreCycle {
		return nil
	}

	if len(c.Genres) == 0 {
		return &ConfigError{Reason: "genre-cycle mode needs at least one genre"}
	}

	if current, ok := c.CurrentGenre.Get(); ok && !lo.Contains(c.Genres, current) {
		return &ConfigError{Reason: fmt.Sprintf("current genre %q is not in the genre set", current)}
	}

	return nil
}
