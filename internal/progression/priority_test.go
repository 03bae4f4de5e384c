package progression

import (
	"sort"
	"testing"
)

func sorted(words []string) []string {
	out := append([]string(nil), words...)
	sort.Strings(out)
	return out
}

func equalSets(a, b []string) bool {
	a, b = sorted(a), sorted(b)
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestPriorityWordsTestsOnlyMissedWords(t *testing.T) {
	unit := []string{"ephemeral", "lucid", "arduous", "candid", "dormant",
		"eloquent", "frugal", "gregarious", "hapless", "immutable"}
	recent := [][]string{
		{"ephemeral"},
		{"lucid"},
	}

	seed := int64(42)
	got, remediation := PriorityWords(recent, unit, &seed)
	if !remediation {
		t.Error("expected a remediation set")
	}
	if !equalSets(got, []string{"ephemeral", "lucid"}) {
		t.Errorf("PriorityWords = %v, want exactly the two missed words", got)
	}
}

func TestPriorityWordsFallsBackToFullList(t *testing.T) {
	unit := []string{"a", "b", "c"}
	seed := int64(7)
	got, remediation := PriorityWords(nil, unit, &seed)
	if remediation {
		t.Error("no misses must not be flagged as remediation")
	}
	if !equalSets(got, unit) {
		t.Errorf("PriorityWords with no misses = %v, want the full unit list", got)
	}
}

func TestPriorityWordsIgnoresAttemptsBeyondWindow(t *testing.T) {
	unit := []string{"a", "b", "c", "d"}
	// Newest first; the fourth entry is outside the 3-attempt window.
	recent := [][]string{{"a"}, {"b"}, {"c"}, {"d"}}
	seed := int64(1)
	got, _ := PriorityWords(recent, unit, &seed)
	if !equalSets(got, []string{"a", "b", "c"}) {
		t.Errorf("PriorityWords = %v, want only words from the last 3 attempts", got)
	}
}

func TestPriorityWordsDropsWordsNoLongerInUnit(t *testing.T) {
	unit := []string{"a", "b"}
	recent := [][]string{{"a", "removed"}}
	seed := int64(3)
	got, remediation := PriorityWords(recent, unit, &seed)
	if !remediation {
		t.Error("expected a remediation set")
	}
	if !equalSets(got, []string{"a"}) {
		t.Errorf("PriorityWords = %v, want stale words dropped", got)
	}
}

func TestPriorityWordsAllMissesStale(t *testing.T) {
	// Every missed word left the unit: fall back to the full list.
	unit := []string{"a", "b"}
	recent := [][]string{{"removed", "gone"}}
	seed := int64(11)
	got, remediation := PriorityWords(recent, unit, &seed)
	if remediation {
		t.Error("stale-only misses must fall back to the full list")
	}
	if !equalSets(got, unit) {
		t.Errorf("PriorityWords = %v, want the full unit list", got)
	}
}

func TestPriorityWordsDeduplicates(t *testing.T) {
	unit := []string{"a", "b", "c"}
	recent := [][]string{{"a", "b"}, {"a"}, {"b"}}
	seed := int64(5)
	got, _ := PriorityWords(recent, unit, &seed)
	if !equalSets(got, []string{"a", "b"}) {
		t.Errorf("PriorityWords = %v, want deduplicated misses", got)
	}
}

func TestShuffleDeterministicWithSeed(t *testing.T) {
	words := []string{"a", "b", "c", "d", "e", "f"}
	seed := int64(99)
	first := Shuffle(words, &seed)
	second := Shuffle(words, &seed)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("seeded shuffle not deterministic: %v vs %v", first, second)
		}
	}
	if !equalSets(first, words) {
		t.Errorf("shuffle must be a permutation, got %v", first)
	}
	// Input must not be mutated.
	if words[0] != "a" || words[5] != "f" {
		t.Errorf("shuffle mutated its input: %v", words)
	}
}
