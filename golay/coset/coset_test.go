package coset

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/nathanhack/leech/golay"
	"gonum.org/v1/gonum/stat/combin"
)

func buildTable(t *testing.T) *Table {
	t.Helper()
	table, err := Search(context.Background(), false)
	if err != nil {
		t.Fatalf("expected no error found :%v", err)
	}
	return table
}

func TestSearch(t *testing.T) {
	table := buildTable(t)

	if table.Len() != TableLen {
		t.Fatalf("expected %v rows found %v", TableLen, table.Len())
	}

	// table[0] must be the zero pattern and every row must map back to
	// its own syndrome with weight within the covering radius
	if table.Leader(0) != 0 {
		t.Fatalf("expected zero leader for syndrome 0 found %v", table.Leader(0))
	}
	for s := 0; s < TableLen; s++ {
		l := table.Leader(golay.Syndrome(s))
		if actual := golay.ComputeSyndrome(l); actual != golay.Syndrome(s) {
			t.Fatalf("expected leader of %v to map to %v found %v", s, s, actual)
		}
		if l.Weight() > golay.CoveringRadius {
			t.Fatalf("expected weight <=%v for syndrome %v found %v", golay.CoveringRadius, s, l.Weight())
		}
	}
}

func TestSearchWeightDistribution(t *testing.T) {
	// C(24,0)..C(24,3) all yield distinct cosets; the remaining cosets
	// are covered at the covering radius
	expected := map[int]int{0: 1, 1: 24, 2: 276, 3: 2024, 4: 1771}

	counts := buildTable(t).WeightCounts()
	for w, count := range expected {
		if counts[w] != count {
			t.Fatalf("expected %v leaders of weight %v found %v", count, w, counts[w])
		}
	}

	total := 0
	for _, count := range counts {
		total += count
	}
	if total != TableLen {
		t.Fatalf("expected %v total leaders found %v", TableLen, total)
	}
}

func TestSearchWeightOneLeader(t *testing.T) {
	table := buildTable(t)

	for i := 0; i < golay.CodewordLength; i++ {
		e := golay.Pattern(1) << i
		s := golay.ComputeSyndrome(e)
		if s == 0 {
			t.Fatalf("expected nonzero syndrome for weight-1 pattern at position %v", i)
		}
		if l := table.Leader(s); l != e {
			t.Fatalf("expected leader %v for syndrome %v found %v", e, s, l)
		}
	}
}

func TestSearchRepairsUpToThreeErrors(t *testing.T) {
	tests := []struct {
		message uint16
		errs    golay.Pattern
	}{
		{0, 1<<0 | 1<<5 | 1<<17},
		{0xABC, 1<<0 | 1<<5 | 1<<17},
		{0xFFF, 1<<2 | 1<<3 | 1<<23},
		{42, 1 << 11},
		{42, 1<<8 | 1<<9},
	}

	table := buildTable(t)
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			// corrupt a codeword, then undo via the looked-up leader
			c := golay.Codeword(test.message)
			corrupted := c ^ test.errs
			l := table.Leader(golay.ComputeSyndrome(corrupted))
			if repaired := corrupted ^ l; repaired != c {
				t.Fatalf("expected codeword %v after repair found %v", c, repaired)
			}
		})
	}
}

func TestSearchDeterminism(t *testing.T) {
	first := buildTable(t)
	second := buildTable(t)

	a, _ := first.MarshalBinary()
	b, _ := second.MarshalBinary()
	if !bytes.Equal(a, b) {
		t.Fatalf("expected byte-identical tables")
	}
	if first.Checksum() != second.Checksum() {
		t.Fatalf("expected identical checksums found %v and %v", first.Checksum(), second.Checksum())
	}
}

func TestSearchRejectsCompletionPastCoveringRadius(t *testing.T) {
	// a full-rank check matrix whose covering radius is 5: every syndrome
	// is reachable, but completion needs weight-5 leaders, which must be
	// rejected rather than emitted
	cols := [golay.CodewordLength]golay.Syndrome{
		1, 2, 4, 8, 16, 32, 64, 128, 256, 512, 1024, 2048,
		3459, 1578, 3105, 3647, 1723, 166, 1061, 3955, 2095, 1991, 1659, 3762,
	}
	syndrome := func(p golay.Pattern) golay.Syndrome {
		var s golay.Syndrome
		for i := 0; i < golay.CodewordLength; i++ {
			if p&(1<<i) != 0 {
				s ^= cols[i]
			}
		}
		return s
	}

	table, err := search(context.Background(), syndrome, false)
	if table != nil {
		t.Fatalf("expected no table")
	}
	if !errors.Is(err, ErrSearchIncomplete) {
		t.Fatalf("expected ErrSearchIncomplete found :%v", err)
	}
}

func TestSearchCeilingExhausted(t *testing.T) {
	// a degenerate syndrome computation can never cover all 4096 values;
	// the ceiling must be reported as exhausted, never a partial table
	syndrome := func(p golay.Pattern) golay.Syndrome {
		return 0
	}

	table, err := search(context.Background(), syndrome, false)
	if table != nil {
		t.Fatalf("expected no table")
	}
	if !errors.Is(err, ErrSearchIncomplete) {
		t.Fatalf("expected ErrSearchIncomplete found :%v", err)
	}
}

func TestSearchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Search(ctx, false)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled found :%v", err)
	}
}

func TestVerify(t *testing.T) {
	table := buildTable(t)
	if err := table.Verify(context.Background(), 0); err != nil {
		t.Fatalf("expected no error found :%v", err)
	}

	// corrupting any row must be caught
	table.leaders[17] ^= 1 << 20
	if err := table.Verify(context.Background(), 0); err == nil {
		t.Fatalf("expected error for corrupted row")
	}
}

func TestSaveLoad(t *testing.T) {
	table := buildTable(t)
	path := filepath.Join(t.TempDir(), "leaders.bin")

	if err := Save(path, table); err != nil {
		t.Fatalf("expected no error found :%v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("expected no error found :%v", err)
	}
	if loaded.Checksum() != table.Checksum() {
		t.Fatalf("expected identical checksums after roundtrip")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		bytes []byte
	}{
		{"truncated", make([]byte, TableLen*rowBytes-1)},
		{"oversized", make([]byte, TableLen*rowBytes+3)},
		{"empty", nil},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "leaders.bin")
			if err := os.WriteFile(path, test.bytes, 0644); err != nil {
				t.Fatalf("expected no error found :%v", err)
			}

			_, err := Load(path)
			if !errors.Is(err, ErrPersistence) {
				t.Fatalf("expected ErrPersistence found :%v", err)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.bin")); !errors.Is(err, ErrPersistence) {
		t.Fatalf("expected ErrPersistence for missing file")
	}
}

func TestWeightStats(t *testing.T) {
	stats := buildTable(t).WeightStats()
	if stats.Count != TableLen {
		t.Fatalf("expected %v samples found %v", TableLen, stats.Count)
	}
	if stats.Mean <= 0 || stats.Mean > float64(golay.CoveringRadius) {
		t.Fatalf("expected mean weight in (0,%v] found %v", golay.CoveringRadius, stats.Mean)
	}
}

func TestCombinationsOrder(t *testing.T) {
	// the enumeration order is a reproducibility contract; it must match
	// plain lexicographic index-combination order
	tests := []struct {
		n, k int
	}{
		{6, 1},
		{6, 3},
		{24, 2},
		{24, 4},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			expected := combin.Combinations(test.n, test.k)

			count := 0
			for combo := newCombinations(test.n, test.k); combo.next(); count++ {
				if count >= len(expected) {
					t.Fatalf("expected %v combinations", len(expected))
				}
				var want golay.Pattern
				for _, idx := range expected[count] {
					want |= 1 << idx
				}
				if actual := combo.pattern(); actual != want {
					t.Fatalf("expected pattern %v at rank %v found %v", want, count, actual)
				}
			}
			if count != len(expected) {
				t.Fatalf("expected %v combinations found %v", len(expected), count)
			}
		})
	}
}

func TestCombinationsZeroK(t *testing.T) {
	combo := newCombinations(24, 0)
	if !combo.next() {
		t.Fatalf("expected a single empty combination")
	}
	if p := combo.pattern(); p != 0 {
		t.Fatalf("expected zero pattern found %v", p)
	}
	if combo.next() {
		t.Fatalf("expected exhaustion after the empty combination")
	}
}
