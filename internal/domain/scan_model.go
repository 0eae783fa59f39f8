package domain

import (
	"sort"
	"time"
)

// ScanRecord is one output row of a scan run. Records are immutable once
// created and only ever appended to the scan log, never rewritten.
type ScanRecord struct {
	Timestamp   time.Time
	Pubkey      string
	GossipIP    string
	Version     string
	CountryCode string
	CountryName string
	Sanctioned  bool
}

// CountryTally counts scan rows per country code while remembering the order
// codes were first seen, so equal counts sort toward the earlier code.
type CountryTally struct {
	counts map[string]int
	order  []string
}

func NewCountryTally() *CountryTally {
	return &CountryTally{counts: make(map[string]int)}
}

// Add increments the count for code, registering it on first sight.
func (t *CountryTally) Add(code string) {
	if _, seen := t.counts[code]; !seen {
		t.order = append(t.order, code)
	}
	t.counts[code]++
}

// Count returns the current count for code, zero when never added.
func (t *CountryTally) Count(code string) int {
	return t.counts[code]
}

// Total returns the sum over all counted codes.
func (t *CountryTally) Total() int {
	total := 0
	for _, count := range t.counts {
		total += count
	}
	return total
}

type TallyEntry struct {
	CountryCode string
	Count       int
}

// Entries returns every counted code ordered by descending count. Codes with
// equal counts keep their first-seen order.
func (t *CountryTally) Entries() []TallyEntry {
	entries := make([]TallyEntry, 0, len(t.order))
	for _, code := range t.order {
		entries = append(entries, TallyEntry{CountryCode: code, Count: t.counts[code]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}
