// Package names sorts player- and planet-display names for diagnostics
// and UI listings using locale-aware collation, rather than a naive byte
// sort that mishandles accented names. It never participates in rule
// logic — it is a leaf, display-only concern.
package names

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Registry maps entity ids (by their hex string) to a display name and
// sorts them collation-aware for a given language tag.
type Registry struct {
	names map[string]string
}

// NewRegistry returns an empty name registry.
func NewRegistry() *Registry {
	return &Registry{names: make(map[string]string)}
}

// Set records the display name for an entity id's hex string.
func (r *Registry) Set(idHex, name string) {
	r.names[idHex] = name
}

// Name returns the display name for idHex, or idHex itself if unset.
func (r *Registry) Name(idHex string) string {
	if n, ok := r.names[idHex]; ok {
		return n
	}
	return idHex
}

// SortedIDs returns every registered id's hex string sorted by display
// name under tag's collation rules (e.g. language.English).
func (r *Registry) SortedIDs(tag language.Tag) []string {
	ids := make([]string, 0, len(r.names))
	for id := range r.names {
		ids = append(ids, id)
	}
	return sortIDsByName(r, ids, collate.New(tag))
}

func sortIDsByName(r *Registry, ids []string, col *collate.Collator) []string {
	type pair struct {
		id   string
		name string
	}
	pairs := make([]pair, len(ids))
	for i, id := range ids {
		pairs[i] = pair{id: id, name: r.Name(id)}
	}
	// Insertion sort is sufficient here: name registries are small
	// (players and planets per game, not a bulk index), and it lets us
	// use col.CompareString directly without building throwaway buffers.
	for i := 1; i < len(pairs); i++ {
		j := i
		for j > 0 && col.CompareString(pairs[j-1].name, pairs[j].name) > 0 {
			pairs[j-1], pairs[j] = pairs[j], pairs[j-1]
			j--
		}
	}
	out := make([]string, len(pairs))
	for i, p := range pairs {
		out[i] = p.id
	}
	return out
}
