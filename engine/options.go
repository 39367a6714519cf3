package engine

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Options control the pragmas applied to every connection in a pool.
type Options struct {
	// ForeignKeys enables foreign key enforcement. SQLite leaves it off by
	// default; this package turns it on unless told otherwise.
	ForeignKeys bool

	// JournalMode sets PRAGMA journal_mode (e.g. "wal", "delete"). Empty keeps
	// the engine default.
	JournalMode string

	// BusyTimeout sets PRAGMA busy_timeout. Zero keeps the engine default.
	BusyTimeout time.Duration
}

// Option mutates Options.
type Option func(*Options)

// WithForeignKeys toggles foreign key enforcement.
func WithForeignKeys(enabled bool) Option {
	return func(o *Options) { o.ForeignKeys = enabled }
}

// WithJournalMode sets the journal mode pragma.
func WithJournalMode(mode string) Option {
	return func(o *Options) { o.JournalMode = strings.ToLower(strings.TrimSpace(mode)) }
}

// WithBusyTimeout sets the busy timeout pragma.
func WithBusyTimeout(d time.Duration) Option {
	return func(o *Options) { o.BusyTimeout = d }
}

// NewOptions returns the defaults with opts applied.
func NewOptions(opts ...Option) Options {
	o := Options{ForeignKeys: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

var journalModes = map[string]bool{
	"delete":   true,
	"truncate": true,
	"persist":  true,
	"memory":   true,
	"wal":      true,
	"off":      true,
}

// pragmas renders the options as modernc.org/sqlite _pragma query values.
func (o Options) pragmas() ([]string, error) {
	var out []string
	if o.BusyTimeout > 0 {
		out = append(out, fmt.Sprintf("busy_timeout(%d)", o.BusyTimeout.Milliseconds()))
	}
	if o.ForeignKeys {
		out = append(out, "foreign_keys(1)")
	} else {
		out = append(out, "foreign_keys(0)")
	}
	if o.JournalMode != "" {
		if !journalModes[o.JournalMode] {
			return nil, fmt.Errorf("engine: unsupported journal mode %q", o.JournalMode)
		}
		out = append(out, "journal_mode("+o.JournalMode+")")
	}
	return out, nil
}

// DSN converts dbURL into a modernc.org/sqlite data source name carrying the
// option pragmas, so that each new pooled connection applies them.
func DSN(dbURL string, opts ...Option) (string, error) {
	path, err := ParsePath(dbURL)
	if err != nil {
		return "", err
	}
	pragmas, err := NewOptions(opts...).pragmas()
	if err != nil {
		return "", err
	}
	values := url.Values{}
	for _, p := range pragmas {
		values.Add("_pragma", p)
	}
	return path + "?" + values.Encode(), nil
}
