// SPDX-License-Identifier: Apache-2.0

package confres

// Registry is an immutable, ordered stack of configuration Sources. Priority
// runs in reverse insertion order: the last source added is consulted first,
// so later layers (e.g. environment overrides) win over earlier ones (e.g.
// packaged defaults). Construct one with Builder.Build.
type Registry struct {
	sources []Source
}

// newRegistry wraps a source slice without checking it; Build checks the
// final slice for duplicate labels, not the transient one. Callers pass
// sources in insertion order; Find walks it in reverse.
func newRegistry(sources []Source) *Registry {
	return &Registry{sources: sources}
}

// Find scans sources from highest to lowest priority and returns the first
// value present for key, along with the label of the source that held it.
func (r *Registry) Find(key string) (value string, label string, ok bool) {
	for i := len(r.sources) - 1; i >= 0; i-- {
		src := r.sources[i]
		if v, found := src.Lookup(key); found {
			return v, src.Label, true
		}
	}
	return "", "", false
}

// Labels returns source labels in descending priority order (highest
// priority first), used for diagnostic logging at build time. The
// implicit ROOT sentinel is omitted.
func (r *Registry) Labels() []string {
	labels := make([]string, 0, len(r.sources))
	for i := len(r.sources) - 1; i >= 0; i-- {
		if r.sources[i].Label == "ROOT" {
			continue
		}
		labels = append(labels, r.sources[i].Label)
	}
	return labels
}

// Len returns the number of layered sources in the registry.
func (r *Registry) Len() int {
	return len(r.sources)
}
