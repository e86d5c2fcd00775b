// Package progress tracks per-skill levels shown on the affinity chart.
package progress

import "github.com/abhisek/grimoire/internal/catalog"

// FullMark is the maximum level of any skill.
const FullMark = 100

// Entry is the level of a single skill.
type Entry struct {
	Kind     catalog.Kind
	Skill    string // chart axis label
	Level    int
	FullMark int
}

// Store is an ordered collection of entries, one per skill.
// It is not safe for concurrent use; the UI event loop owns it.
type Store struct {
	entries []Entry
}

// New creates a store from the given entries. Levels are clamped.
func New(initial ...Entry) *Store {
	s := &Store{entries: make([]Entry, 0, len(initial))}
	for _, e := range initial {
		e.FullMark = FullMark
		e.Level = clamp(e.Level)
		s.entries = append(s.entries, e)
	}
	return s
}

// Default returns the starting levels for a new apprentice.
func Default() *Store {
	return New(
		Entry{Kind: catalog.KindPython, Skill: "Python", Level: 20},
		Entry{Kind: catalog.KindManagement, Skill: "Management", Level: 15},
		Entry{Kind: catalog.KindSpeaker, Skill: "Speaking", Level: 10},
	)
}

// Increment adds delta to the level of kind, clamped to [0, FullMark].
// Returns false if the store has no entry for kind.
func (s *Store) Increment(kind catalog.Kind, delta int) (Entry, bool) {
	for i := range s.entries {
		if s.entries[i].Kind == kind {
			s.entries[i].Level = clamp(s.entries[i].Level + delta)
			return s.entries[i], true
		}
	}
	return Entry{}, false
}

// Level returns the current level of kind, or 0 if unknown.
func (s *Store) Level(kind catalog.Kind) int {
	for _, e := range s.entries {
		if e.Kind == kind {
			return e.Level
		}
	}
	return 0
}

// Entries returns a copy of all entries in order.
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Total returns the sum of all levels.
func (s *Store) Total() int {
	var total int
	for _, e := range s.entries {
		total += e.Level
	}
	return total
}

// Ratio returns the sum of levels over the sum of full marks, in [0, 1].
func (s *Store) Ratio() float64 {
	if len(s.entries) == 0 {
		return 0
	}
	return float64(s.Total()) / float64(len(s.entries)*FullMark)
}

func clamp(level int) int {
	return max(0, min(FullMark, level))
}
