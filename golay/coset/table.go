// Package coset builds and persists the coset-leader table for the
// (24,12,8) Golay code: for every 12-bit syndrome, the minimum-weight 24-bit
// pattern producing it. Downstream decoders treat the persisted table as
// read-only ground truth.
package coset

import (
	"context"
	"crypto/md5"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/nathanhack/avgstd"
	"github.com/nathanhack/leech/golay"
	"github.com/nathanhack/threadpool"
)

const (
	// TableLen is the number of table rows, one per syndrome.
	TableLen = 1 << golay.ParitySymbols

	// rowBytes is the serialized size of one leader pattern.
	rowBytes = 3
)

// ErrPersistence indicates an I/O or format failure while saving or loading
// a table.
var ErrPersistence = errors.New("coset table persistence")

// Table is the total syndrome → leader mapping.
type Table struct {
	leaders [TableLen]golay.Pattern
}

// Leader returns the minimum-weight pattern recorded for s.
func (t *Table) Leader(s golay.Syndrome) golay.Pattern {
	return t.leaders[s]
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return TableLen
}

// WeightCounts returns how many leaders have each Hamming weight.
func (t *Table) WeightCounts() map[int]int {
	counts := make(map[int]int)
	for _, l := range t.leaders {
		counts[l.Weight()]++
	}
	return counts
}

// WeightStats returns running statistics over the leader weights.
func (t *Table) WeightStats() avgstd.AvgStd {
	stats := avgstd.AvgStd{}
	for _, l := range t.leaders {
		stats.Update(float64(l.Weight()))
	}
	return stats
}

// Verify audits every row: the leader's syndrome must equal its row index
// and its weight must be within the covering radius. threads specifies the
// number of threads to use, if <=0 will use runtime.NumCPU().
func (t *Table) Verify(ctx context.Context, threads int) error {
	var mux sync.Mutex
	var firstErr error

	pool := threadpool.NewFixedSize(ctx, threads, TableLen)
	for s := 0; s < TableLen; s++ {
		row := s
		pool.Add(func() {
			err := t.verifyRow(golay.Syndrome(row))
			if err == nil {
				return
			}
			mux.Lock()
			if firstErr == nil {
				firstErr = err
			}
			mux.Unlock()
		})
	}
	pool.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}

func (t *Table) verifyRow(s golay.Syndrome) error {
	l := t.leaders[s]
	if w := l.Weight(); w > golay.CoveringRadius {
		return fmt.Errorf("row %v has weight %v but <=%v required", s, w, golay.CoveringRadius)
	}
	if actual := golay.ComputeSyndrome(l); actual != s {
		return fmt.Errorf("row %v maps to syndrome %v", s, actual)
	}
	return nil
}

// MarshalBinary serializes the table: 4096 rows of 3 bytes, row s at offset
// 3s, each leader little-endian. The layout is fixed so identical generator
// constants and enumeration order always produce byte-identical files.
func (t *Table) MarshalBinary() ([]byte, error) {
	bs := make([]byte, TableLen*rowBytes)
	for s, l := range t.leaders {
		bs[s*rowBytes] = byte(l)
		bs[s*rowBytes+1] = byte(l >> 8)
		bs[s*rowBytes+2] = byte(l >> 16)
	}
	return bs, nil
}

// UnmarshalBinary parses the layout written by MarshalBinary, rejecting any
// input whose row count is not exactly 4096.
func (t *Table) UnmarshalBinary(bs []byte) error {
	if len(bs) != TableLen*rowBytes {
		return fmt.Errorf("%w: expected %v rows found %v bytes", ErrPersistence, TableLen, len(bs))
	}
	for s := 0; s < TableLen; s++ {
		t.leaders[s] = golay.Pattern(bs[s*rowBytes]) |
			golay.Pattern(bs[s*rowBytes+1])<<8 |
			golay.Pattern(bs[s*rowBytes+2])<<16
	}
	return nil
}

// Checksum returns the md5 hex digest of the serialized table.
func (t *Table) Checksum() string {
	bs, _ := t.MarshalBinary()
	return fmt.Sprintf("%x", md5.Sum(bs))
}

// Save writes the table to filepath in the MarshalBinary layout.
func Save(filepath string, t *Table) error {
	bs, err := t.MarshalBinary()
	if err != nil {
		return err
	}

	err = os.WriteFile(filepath, bs, 0644)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

// Load reads a table previously written by Save.
func Load(filepath string) (*Table, error) {
	bs, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	var t Table
	err = t.UnmarshalBinary(bs)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
