// SPDX-License-Identifier: Apache-2.0

// Package confres implements a hierarchical configuration resolution
// engine: a layered source registry that resolves keys by priority, a
// property-key parser for a small grammar of literal/override/placeholder
// parts, and a resolution engine that interpolates placeholders, applies
// override fallback, detects expansion cycles, and optionally caches
// lookups under a max-age policy.
//
// There is no CLI and no remote configuration surface; confres is meant to
// be embedded as a library. Applications assemble a Registry with a
// Builder from maps, functions, and properties files, construct an Engine
// over it, and perform typed lookups:
//
//	reg, err := confres.NewBuilder().
//		WithLogging("myapp", "1.0.0", "json").
//		AddMap("defaults", map[string]string{"app.timeout": "30"}).
//		Build(confres.SystemClock{})
//	eng := confres.NewEngine(reg)
//	v, err := eng.GetInt("app.timeout", 0)
package confres
