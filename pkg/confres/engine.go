// SPDX-License-Identifier: Apache-2.0

package confres

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/samber/oops"
)

// Engine resolves typed configuration values against a Registry, expanding
// placeholders and applying override fallback along the way. An Engine
// built with NewEngineWithCache memoizes resolved values under an
// age-aware Cache; one built with NewEngine always resolves fresh.
type Engine struct {
	registry *Registry
	cache    *Cache
}

// NewEngine returns an Engine with no cache: every lookup resolves fresh.
func NewEngine(reg *Registry) *Engine {
	return &Engine{registry: reg}
}

// NewEngineWithCache returns an Engine whose lookups are memoized under an
// age-aware Cache driven by clock.
func NewEngineWithCache(reg *Registry, clock Clock) *Engine {
	return &Engine{registry: reg, cache: NewCache(clock)}
}

// GetString resolves key to its fully placeholder-expanded, override-aware
// string value. maxAge is ignored when the Engine has no cache; otherwise
// it bounds how long a previously resolved value may be reused.
func (e *Engine) GetString(key string, maxAge time.Duration) (Value[string], error) {
	var resolveErr error
	fallback := func() (string, bool) {
		v, ok, err := e.resolveRaw(key, nil)
		if err != nil {
			resolveErr = err
			return "", false
		}
		return v, ok
	}

	var value string
	var ok bool
	if e.cache != nil {
		value, ok = e.cache.Get(key, maxAge.Milliseconds(), fallback)
	} else {
		value, ok = fallback()
	}

	if resolveErr != nil {
		resolutionErrors.WithLabelValues(errorCode(resolveErr)).Inc()
		return Value[string]{}, resolveErr
	}
	if !ok {
		return AbsentValue[string](), nil
	}
	return PresentValue(value), nil
}

// GetBool resolves key and parses it as a case-insensitive "true"/"false".
func (e *Engine) GetBool(key string, maxAge time.Duration) (Value[bool], error) {
	s, ok, err := e.getStringForCoercion(key, maxAge)
	if err != nil || !ok {
		return Value[bool]{}, err
	}
	switch strings.ToLower(s) {
	case "true":
		return PresentValue(true), nil
	case "false":
		return PresentValue(false), nil
	default:
		return Value[bool]{}, e.coerceError(key, "java.lang.Boolean")
	}
}

// GetInt resolves key and parses it as a signed 32-bit base-10 integer.
func (e *Engine) GetInt(key string, maxAge time.Duration) (Value[int32], error) {
	s, ok, err := e.getStringForCoercion(key, maxAge)
	if err != nil || !ok {
		return Value[int32]{}, err
	}
	n, parseErr := strconv.ParseInt(s, 10, 32)
	if parseErr != nil {
		return Value[int32]{}, e.coerceError(key, "java.lang.Integer")
	}
	return PresentValue(int32(n)), nil
}

// GetInt64 resolves key and parses it as a signed 64-bit base-10 integer.
func (e *Engine) GetInt64(key string, maxAge time.Duration) (Value[int64], error) {
	s, ok, err := e.getStringForCoercion(key, maxAge)
	if err != nil || !ok {
		return Value[int64]{}, err
	}
	n, parseErr := strconv.ParseInt(s, 10, 64)
	if parseErr != nil {
		return Value[int64]{}, e.coerceError(key, "java.lang.Long")
	}
	return PresentValue(n), nil
}

// GetFloat32 resolves key and parses it as a decimal single-precision float.
func (e *Engine) GetFloat32(key string, maxAge time.Duration) (Value[float32], error) {
	s, ok, err := e.getStringForCoercion(key, maxAge)
	if err != nil || !ok {
		return Value[float32]{}, err
	}
	n, parseErr := strconv.ParseFloat(s, 32)
	if parseErr != nil {
		return Value[float32]{}, e.coerceError(key, "java.lang.Float")
	}
	return PresentValue(float32(n)), nil
}

// GetFloat64 resolves key and parses it as a decimal double-precision float.
func (e *Engine) GetFloat64(key string, maxAge time.Duration) (Value[float64], error) {
	s, ok, err := e.getStringForCoercion(key, maxAge)
	if err != nil || !ok {
		return Value[float64]{}, err
	}
	n, parseErr := strconv.ParseFloat(s, 64)
	if parseErr != nil {
		return Value[float64]{}, e.coerceError(key, "java.lang.Double")
	}
	return PresentValue(n), nil
}

func (e *Engine) getStringForCoercion(key string, maxAge time.Duration) (string, bool, error) {
	v, err := e.GetString(key, maxAge)
	if err != nil {
		return "", false, err
	}
	s, ok := v.Get()
	return s, ok, nil
}

func (e *Engine) coerceError(key, typeName string) error {
	err := coercionError(key, typeName)
	resolutionErrors.WithLabelValues(errorCode(err)).Inc()
	return err
}

// resolveRaw implements the engine's core pipeline: expand any placeholders
// present in key itself, then resolve the expanded key with override
// fallback. visited is the caller's cycle-detection set; a nil visited
// seeds a fresh one containing just key.
func (e *Engine) resolveRaw(key string, visited map[string]bool) (string, bool, error) {
	if visited == nil {
		visited = map[string]bool{key: true}
	}

	expandedKey, err := e.expandPlaceholders(key, visited)
	if err != nil {
		return "", false, err
	}

	return e.lookupWithOverrides(expandedKey, visited)
}

// expandPlaceholders substitutes every leaf "${...}" region in s, processing
// them innermost-first (reverse encounter order) so earlier substitutions
// never shift the offsets of regions still pending. A region whose inner
// key does not resolve is written back unchanged, for traceability.
func (e *Engine) expandPlaceholders(s string, visited map[string]bool) (string, error) {
	regions := FindPlaceholders(s)
	if len(regions) == 0 {
		return s, nil
	}

	result := s
	for i := len(regions) - 1; i >= 0; i-- {
		region := regions[i]
		innerKey := region.InnerKey

		local := make(map[string]bool, len(visited)+1)
		for k := range visited {
			local[k] = true
		}
		if local[innerKey] {
			return "", expansionLoopError(innerKey)
		}
		local[innerKey] = true

		resolved, ok, err := e.resolveRaw(innerKey, local)
		if err != nil {
			return "", err
		}

		replacement := result[region.Start:region.End]
		if ok {
			replacement = resolved
		}
		result = result[:region.Start] + replacement + result[region.End:]
	}

	return result, nil
}

// lookupWithOverrides normalizes absoluteKey into its specific and generic
// forms and tries each against the registry, specific first.
func (e *Engine) lookupWithOverrides(absoluteKey string, visited map[string]bool) (string, bool, error) {
	tree, err := Parse(absoluteKey)
	if err != nil {
		var perr *ParserError
		if errors.As(err, &perr) {
			return "", false, wrapParseError(perr)
		}
		return "", false, err
	}

	specific := Normalize(tree, true)
	generic := Normalize(tree, false)

	if v, ok := e.scanSources(specific); ok {
		expanded, err := e.expandPlaceholders(v, visited)
		return expanded, true, err
	}

	if generic != specific {
		if v, ok := e.scanSources(generic); ok {
			expanded, err := e.expandPlaceholders(v, visited)
			return expanded, true, err
		}
	}

	return "", false, nil
}

// scanSources performs one priority-ordered pass over the registry,
// logging the outcome at info level.
func (e *Engine) scanSources(key string) (string, bool) {
	v, label, ok := e.registry.Find(key)
	if ok {
		slog.Info("resolved configuration key", "key", key, "source", label)
	} else {
		slog.Info("configuration key not found in any source", "key", key)
	}
	return v, ok
}

// MustGetString resolves key and panics with "Key for [<key>] not
// configured" if it is absent, mirroring Value.or_else_throw.
func (e *Engine) MustGetString(key string, maxAge time.Duration) string {
	v, err := e.GetString(key, maxAge)
	if err != nil {
		panic(err)
	}
	return v.OrElseThrow(keyNotConfiguredError(key))
}

func errorCode(err error) string {
	if o, ok := oops.AsOops(err); ok {
		return o.Code()
	}
	return "unknown"
}
