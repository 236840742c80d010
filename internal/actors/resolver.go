// Package actors resolves free-text threat-actor names to canonical
// ATT&CK group identifiers, with ranked fuzzy suggestions when no exact
// table entry exists.
package actors

import "sort"

const (
	// DefaultCutoff is the minimum similarity score for a suggestion.
	DefaultCutoff = 0.6
	// DefaultMaxSuggestions caps the ranked suggestion list.
	DefaultMaxSuggestions = 3
)

// Options configures a Resolver. Zero values select the defaults.
type Options struct {
	// Cutoff is the minimum similarity score for fuzzy suggestions.
	Cutoff float64
	// MaxSuggestions is the maximum number of ranked suggestions returned.
	MaxSuggestions int
}

// Suggestion is one ranked near-match for a query.
type Suggestion struct {
	Name  string  `json:"name"`
	ID    string  `json:"id"`
	Score float64 `json:"-"`
}

// Match is the outcome of resolving one query string: an exact canonical
// identifier, a ranked suggestion list, or neither.
type Match struct {
	Query       string
	ID          string
	Suggestions []Suggestion
}

// Exact reports whether the query resolved to an exact table entry.
func (m Match) Exact() bool {
	return m.ID != ""
}

// Resolver resolves actor names against an immutable lookup table.
// Resolution is a pure function of the query and the table, so a single
// Resolver is safe for concurrent use.
type Resolver struct {
	table  *Table
	cutoff float64
	limit  int
}

// NewResolver creates a Resolver over the given table.
func NewResolver(table *Table, opts Options) *Resolver {
	cutoff := opts.Cutoff
	if cutoff <= 0 {
		cutoff = DefaultCutoff
	}
	limit := opts.MaxSuggestions
	if limit <= 0 {
		limit = DefaultMaxSuggestions
	}
	return &Resolver{table: table, cutoff: cutoff, limit: limit}
}

// Resolve normalizes a raw query and resolves it to an exact canonical id
// when the table has a matching key, or to up to MaxSuggestions ranked
// near-matches otherwise. An empty or unmatched query yields a Match with
// no id and no suggestions; Resolve never fails.
func (r *Resolver) Resolve(query string) Match {
	name := r.table.Normalize(query)

	if id, ok := r.table.Lookup(name); ok {
		return Match{Query: query, ID: id}
	}

	var suggestions []Suggestion
	for _, e := range r.table.Entries() {
		score := Ratio(name, e.Name)
		if score >= r.cutoff {
			suggestions = append(suggestions, Suggestion{Name: e.Name, ID: e.ID, Score: score})
		}
	}

	// Stable sort keeps table declaration order for equal scores
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})
	if len(suggestions) > r.limit {
		suggestions = suggestions[:r.limit]
	}

	return Match{Query: query, Suggestions: suggestions}
}
