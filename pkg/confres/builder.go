// SPDX-License-Identifier: Apache-2.0

package confres

import (
	"log/slog"
	"strings"

	"github.com/conflayer/confres/internal/logging"
)

// Builder assembles a Registry from static and deferred sources. Sources
// are consulted in reverse of the order they were added, so add lowest
// priority first (packaged defaults) and highest priority last (CLI flags,
// environment overrides).
type Builder struct {
	entries []builderEntry

	logService, logVersion, logFormat string
	logConfigured                     bool
}

// WithLogging installs a trace-aware structured logger as the process
// default at the start of Build, the way an application wires its logging
// before doing anything else at startup. service/version are attached to
// every record; format is "json" or "text" (see internal/logging.Setup).
// Engine and Registry otherwise just call the package-level slog functions
// against whatever default is installed — this is the one place confres
// itself chooses to install one, for embedders who don't already have
// their own.
func (b *Builder) WithLogging(service, version, format string) *Builder {
	b.logService = service
	b.logVersion = version
	b.logFormat = format
	b.logConfigured = true
	return b
}

type builderEntry struct {
	deferred bool
	source   Source
	factory  DeferredFactory
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddSource appends a static layer.
func (b *Builder) AddSource(s Source) *Builder {
	b.entries = append(b.entries, builderEntry{source: s})
	return b
}

// MustAddSource appends a static layer, panicking if it is malformed. This
// is intended for package initialization, where a bad source is a coding
// error rather than a runtime condition.
func (b *Builder) MustAddSource(s Source) *Builder {
	if strings.TrimSpace(s.Label) == "" {
		panic("confres: source label cannot be empty")
	}
	if s.Lookup == nil {
		panic("confres: source lookup function cannot be nil")
	}
	return b.AddSource(s)
}

// AddMap appends a static layer backed by an in-memory map.
func (b *Builder) AddMap(label string, values map[string]string) *Builder {
	return b.AddSource(NewMapSource(label, values))
}

// AddFunc appends a static layer backed by an arbitrary lookup function.
func (b *Builder) AddFunc(label string, lookup func(key string) (string, bool)) *Builder {
	return b.AddSource(NewFuncSource(label, lookup))
}

// AddPropertiesFile appends a layer loaded from a Java-style .properties
// file. Loading happens during Build, so a missing required file surfaces
// as a build error rather than a panic here.
func (b *Builder) AddPropertiesFile(label string, rec PropertiesFileRecord) *Builder {
	return b.AddDeferred(func(_ *Registry) (Source, error) {
		values, err := LoadPropertiesFile(rec)
		if err != nil {
			return EmptySource, err
		}
		if values == nil {
			return EmptySource, nil
		}
		return NewMapSource(label, values), nil
	})
}

// AddDeferred appends a layer whose construction depends on the static
// sources of this Builder, including static sources added after it. The
// factory receives a transient Registry built from those static sources
// only — a deferred factory cannot see
// another deferred layer's output, so deferral nests one level deep.
// Returning EmptySource from factory opts this layer out entirely.
func (b *Builder) AddDeferred(factory DeferredFactory) *Builder {
	b.entries = append(b.entries, builderEntry{deferred: true, factory: factory})
	return b
}

// Build resolves deferred sources against the static layers and returns the
// finished, immutable Registry. It fails if a deferred factory errors, or
// if two non-empty sources share a label.
//
// clock is accepted for API symmetry with the rest of the package — a
// future deferred source that itself wants age-aware caching (e.g. a
// remote config fetch) can be given one without changing this signature —
// though Build itself has no use for it today.
func (b *Builder) Build(clock Clock) (*Registry, error) {
	if b.logConfigured {
		logging.SetDefault(b.logService, b.logVersion, b.logFormat)
	}

	var staticOnly []Source
	for _, e := range b.entries {
		if !e.deferred {
			staticOnly = append(staticOnly, e.source)
		}
	}
	transient := newRegistry(staticOnly)

	final := make([]Source, 0, len(b.entries)+1)
	final = append(final, rootSource())
	seen := make(map[string]bool, len(b.entries))
	for _, e := range b.entries {
		src := e.source
		if e.deferred {
			resolved, err := e.factory(transient)
			if err != nil {
				return nil, err
			}
			if resolved.isEmpty() {
				continue
			}
			src = resolved
		}
		if src.Label != "" {
			if seen[src.Label] {
				return nil, duplicateSourceError(src.Label)
			}
			seen[src.Label] = true
		}
		final = append(final, src)
	}

	reg := newRegistry(final)
	slog.Info("Building ConfigLoader with the following sources (in descending order of priority)",
		"sources", reg.Labels())
	return reg, nil
}
