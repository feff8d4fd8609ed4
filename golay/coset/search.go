package coset

import (
	"context"
	"errors"
	"fmt"

	"github.com/cheggaaa/pb/v3"
	"github.com/nathanhack/leech/golay"
	"github.com/sirupsen/logrus"
)

// searchCeiling bounds the weight classes explored. The covering radius
// guarantees completion by weight 4; the extra margin only matters when the
// generator constant is broken, in which case the search fails loudly.
const searchCeiling = 6

// ErrSearchIncomplete indicates the search did not cover all 4096 syndromes
// within the covering radius: either the weight ceiling was exhausted early,
// or completion needed leaders heavier than the covering radius. Both signal
// a bug in the generator constant or the syndrome computation, never a
// property of the code; no such table is ever returned.
var ErrSearchIncomplete = errors.New("coset leader search incomplete")

// Search builds the complete coset-leader table by enumerating patterns in
// increasing weight, and within a weight class in the lexicographic subset
// order of the combinations generator. The first pattern reaching a syndrome
// wins, so the result is fully deterministic and two runs serialize to
// identical bytes.
func Search(ctx context.Context, showProgress bool) (*Table, error) {
	if err := golay.Validate(); err != nil {
		return nil, err
	}
	return search(ctx, golay.ComputeSyndrome, showProgress)
}

func search(ctx context.Context, syndrome func(golay.Pattern) golay.Syndrome, showProgress bool) (*Table, error) {
	var bar *pb.ProgressBar
	if showProgress {
		bar = pb.StartNew(TableLen)
	}
	finish := func() {
		if showProgress {
			bar.Finish()
		}
	}

	table := &Table{}
	var seen [TableLen]bool
	found := 0

	for w := 0; w <= searchCeiling; w++ {
		logrus.Debugf("searching weight %v (found=%v)", w, found)

		for combo := newCombinations(golay.CodewordLength, w); combo.next(); {
			if err := ctx.Err(); err != nil {
				finish()
				return nil, err
			}

			e := combo.pattern()
			s := syndrome(e)
			if seen[s] {
				continue
			}
			seen[s] = true
			table.leaders[s] = e
			found++
			if showProgress {
				bar.Increment()
			}

			// the remaining candidates of this and higher weight
			// classes can't improve a finished table
			if found == TableLen {
				finish()

				// completing past the covering radius means some
				// recorded leaders are too heavy to be mathematically
				// valid, so the table must not be emitted
				if w > golay.CoveringRadius {
					return nil, fmt.Errorf("%w: all %v syndromes found but completion required weight %v leaders (covering radius %v)", ErrSearchIncomplete, TableLen, w, golay.CoveringRadius)
				}
				logrus.Debugf("search complete at weight %v", w)
				return table, nil
			}
		}
	}

	finish()
	return nil, fmt.Errorf("%w: %v of %v syndromes found through weight %v", ErrSearchIncomplete, found, TableLen, searchCeiling)
}
