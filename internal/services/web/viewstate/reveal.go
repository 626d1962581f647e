// Package viewstate holds request-scoped page state: which decision panels
// are revealed and where a visitor is in the simulator. State is rebuilt
// from the request URL and never stored server-side.
package viewstate

import (
	"net/url"
	"slices"
	"strings"
)

const (
	// RevealParam marks a single-case page as revealed.
	RevealParam = "reveal"
	// OpenParam lists revealed case IDs on the cases list.
	OpenParam = "open"
)

// RevealFlag is one-way: once revealed it stays revealed.
type RevealFlag struct {
	revealed bool
}

// Reveal shows the decision panel.
func (f *RevealFlag) Reveal() {
	f.revealed = true
}

// Revealed reports whether the panel is shown.
func (f RevealFlag) Revealed() bool {
	return f.revealed
}

// ParseRevealFlag reads the flag from query values.
func ParseRevealFlag(values url.Values) RevealFlag {
	var flag RevealFlag
	if isTruthy(values.Get(RevealParam)) {
		flag.Reveal()
	}
	return flag
}

// Query encodes the flag.
func (f RevealFlag) Query() url.Values {
	values := url.Values{}
	if f.revealed {
		values.Set(RevealParam, "1")
	}
	return values
}

// RevealSet tracks which cards have their decision panel open. Order follows
// the order IDs were revealed so encoded URLs are stable.
type RevealSet struct {
	ids []string
}

// NewRevealSet returns a set holding ids, skipping blanks and duplicates.
func NewRevealSet(ids ...string) RevealSet {
	var set RevealSet
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || set.Has(id) {
			continue
		}
		set.ids = append(set.ids, id)
	}
	return set
}

// Has reports whether id is revealed.
func (s RevealSet) Has(id string) bool {
	return slices.Contains(s.ids, id)
}

// Toggle removes id when present and adds it otherwise.
func (s *RevealSet) Toggle(id string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return
	}
	if idx := slices.Index(s.ids, id); idx >= 0 {
		s.ids = slices.Delete(slices.Clone(s.ids), idx, idx+1)
		return
	}
	s.ids = append(slices.Clone(s.ids), id)
}

// Toggled returns a copy of s with id toggled.
func (s RevealSet) Toggled(id string) RevealSet {
	next := RevealSet{ids: slices.Clone(s.ids)}
	next.Toggle(id)
	return next
}

// IDs returns the revealed IDs.
func (s RevealSet) IDs() []string {
	return slices.Clone(s.ids)
}

// Len returns the number of revealed IDs.
func (s RevealSet) Len() int {
	return len(s.ids)
}

// ParseRevealSet reads open IDs from query values, keeping only IDs accepted
// by known. A nil known accepts every ID.
func ParseRevealSet(values url.Values, known func(string) bool) RevealSet {
	var set RevealSet
	for _, raw := range values[OpenParam] {
		for _, id := range strings.Split(raw, ",") {
			id = strings.TrimSpace(id)
			if id == "" || set.Has(id) {
				continue
			}
			if known != nil && !known(id) {
				continue
			}
			set.ids = append(set.ids, id)
		}
	}
	return set
}

// Query encodes the set.
func (s RevealSet) Query() url.Values {
	values := url.Values{}
	for _, id := range s.ids {
		values.Add(OpenParam, id)
	}
	return values
}

func isTruthy(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
