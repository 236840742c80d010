package actors

import (
	"reflect"
	"strings"
	"testing"
)

func TestResolver_ExactMatches(t *testing.T) {
	resolver := NewResolver(DefaultTable(), Options{})

	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{"plain key", "APT36", "att&ck::G0134"},
		{"lowercase key", "apt36", "att&ck::G0134"},
		{"surrounding whitespace", "  APT36  ", "att&ck::G0134"},
		{"alias with space", "APT 36", "att&ck::G0134"},
		{"alias with dash", "APT-36", "att&ck::G0134"},
		{"truncated alias", "SIDECOP", "att&ck::G1008"},
		{"split alias", "Side Copy", "att&ck::G1008"},
		{"dashed alias", "transparent-tribe", "att&ck::G0134"},
		{"named group", "Lazarus Group", "att&ck::G0032"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := resolver.Resolve(tt.query)
			if !m.Exact() {
				t.Fatalf("Resolve(%q) is not exact, suggestions: %v", tt.query, m.Suggestions)
			}
			if m.ID != tt.expected {
				t.Errorf("Resolve(%q).ID = %q, want %q", tt.query, m.ID, tt.expected)
			}
			if len(m.Suggestions) != 0 {
				t.Errorf("exact match carries %d suggestions, want 0", len(m.Suggestions))
			}
		})
	}
}

func TestResolver_AllTableKeysResolveExactly(t *testing.T) {
	table := DefaultTable()
	resolver := NewResolver(table, Options{})

	for _, e := range table.Entries() {
		// Any casing with surrounding whitespace must still hit the key
		query := "  " + strings.ToLower(e.Name) + " "
		m := resolver.Resolve(query)
		if !m.Exact() || m.ID != e.ID {
			t.Errorf("Resolve(%q) = (%q, exact=%v), want (%q, exact=true)", query, m.ID, m.Exact(), e.ID)
		}
	}
}

func TestResolver_AliasesMatchTheirTargets(t *testing.T) {
	resolver := NewResolver(DefaultTable(), Options{})

	for alias, target := range attackAliases {
		got := resolver.Resolve(alias)
		want := resolver.Resolve(target)
		if !reflect.DeepEqual(got.ID, want.ID) || !reflect.DeepEqual(got.Suggestions, want.Suggestions) {
			t.Errorf("Resolve(%q) differs from Resolve(%q): %+v vs %+v", alias, target, got, want)
		}
	}
}

func TestResolver_Suggestions(t *testing.T) {
	resolver := NewResolver(DefaultTable(), Options{})

	m := resolver.Resolve("Lazarus Grp")
	if m.Exact() {
		t.Fatalf("Resolve(\"Lazarus Grp\") unexpectedly exact: %q", m.ID)
	}
	if len(m.Suggestions) == 0 {
		t.Fatal("Resolve(\"Lazarus Grp\") returned no suggestions")
	}
	if len(m.Suggestions) > DefaultMaxSuggestions {
		t.Errorf("got %d suggestions, want at most %d", len(m.Suggestions), DefaultMaxSuggestions)
	}

	// The highest-ranked suggestion is the closest key
	if m.Suggestions[0].Name != "LAZARUS GROUP" || m.Suggestions[0].ID != "att&ck::G0032" {
		t.Errorf("top suggestion = %+v, want LAZARUS GROUP -> att&ck::G0032", m.Suggestions[0])
	}

	// Scores are non-increasing and all above the cutoff
	for i, s := range m.Suggestions {
		if s.Score < DefaultCutoff {
			t.Errorf("suggestion %d score %f below cutoff %f", i, s.Score, DefaultCutoff)
		}
		if i > 0 && s.Score > m.Suggestions[i-1].Score {
			t.Errorf("suggestion scores increase at index %d: %f > %f", i, s.Score, m.Suggestions[i-1].Score)
		}
	}

	found := false
	for _, s := range m.Suggestions {
		if s.Name == "LAZARUS" && s.ID == "att&ck::G0032" {
			found = true
		}
	}
	if !found {
		t.Errorf("suggestions %v do not include LAZARUS -> att&ck::G0032", m.Suggestions)
	}
}

func TestResolver_NoMatch(t *testing.T) {
	resolver := NewResolver(DefaultTable(), Options{})

	tests := []struct {
		name  string
		query string
	}{
		{"unknown name", "Totally Unknown Actor Name"},
		{"empty query", ""},
		{"whitespace only", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := resolver.Resolve(tt.query)
			if m.Exact() {
				t.Errorf("Resolve(%q) unexpectedly exact: %q", tt.query, m.ID)
			}
			if len(m.Suggestions) != 0 {
				t.Errorf("Resolve(%q) returned suggestions %v, want none", tt.query, m.Suggestions)
			}
		})
	}
}

func TestResolver_Deterministic(t *testing.T) {
	resolver := NewResolver(DefaultTable(), Options{})

	queries := []string{"APT36", "Lazarus Grp", "Totally Unknown Actor Name", "muddy water"}
	for _, query := range queries {
		first := resolver.Resolve(query)
		for i := 0; i < 5; i++ {
			if got := resolver.Resolve(query); !reflect.DeepEqual(got, first) {
				t.Errorf("Resolve(%q) is not deterministic: %+v vs %+v", query, got, first)
			}
		}
	}
}

func TestResolver_EqualScoresKeepTableOrder(t *testing.T) {
	// AAAB and AABA score identically against AAA; the suggestion order
	// must follow table declaration order.
	forward, err := NewTable([]Mapping{{"AAAB", "id1"}, {"AABA", "id2"}}, nil)
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}
	reversed, err := NewTable([]Mapping{{"AABA", "id2"}, {"AAAB", "id1"}}, nil)
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}

	m := NewResolver(forward, Options{}).Resolve("AAA")
	if len(m.Suggestions) != 2 || m.Suggestions[0].Name != "AAAB" || m.Suggestions[1].Name != "AABA" {
		t.Errorf("forward table suggestions = %v, want [AAAB AABA]", m.Suggestions)
	}
	if len(m.Suggestions) == 2 && m.Suggestions[0].Score != m.Suggestions[1].Score {
		t.Fatalf("test fixture scores differ: %f vs %f", m.Suggestions[0].Score, m.Suggestions[1].Score)
	}

	m = NewResolver(reversed, Options{}).Resolve("AAA")
	if len(m.Suggestions) != 2 || m.Suggestions[0].Name != "AABA" || m.Suggestions[1].Name != "AAAB" {
		t.Errorf("reversed table suggestions = %v, want [AABA AAAB]", m.Suggestions)
	}
}

func TestResolver_Options(t *testing.T) {
	table := DefaultTable()

	// A strict cutoff prunes weaker suggestions
	strict := NewResolver(table, Options{Cutoff: 0.95})
	if m := strict.Resolve("Lazarus Grp"); len(m.Suggestions) != 0 {
		t.Errorf("cutoff 0.95 still produced suggestions: %v", m.Suggestions)
	}

	// A lower limit truncates the ranked list
	limited := NewResolver(table, Options{MaxSuggestions: 1})
	if m := limited.Resolve("Lazarus Grp"); len(m.Suggestions) != 1 {
		t.Errorf("limit 1 produced %d suggestions", len(m.Suggestions))
	}

	// Zero values fall back to the defaults
	defaulted := NewResolver(table, Options{})
	if defaulted.cutoff != DefaultCutoff || defaulted.limit != DefaultMaxSuggestions {
		t.Errorf("zero options = (%f, %d), want (%f, %d)",
			defaulted.cutoff, defaulted.limit, DefaultCutoff, DefaultMaxSuggestions)
	}
}
