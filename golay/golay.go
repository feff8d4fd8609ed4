// Package golay holds the fixed extended binary Golay (24,12,8) code: the
// standard-form generator matrix, the parity-check matrix derived from it,
// and syndrome computation over GF(2).
package golay

import (
	"errors"
	"fmt"
	"math/bits"

	mat "github.com/nathanhack/sparsemat"
)

const (
	// CodewordLength is the number of bits in a codeword.
	CodewordLength = 24
	// MessageLength is the number of message bits per codeword.
	MessageLength = 12
	// ParitySymbols is the number of parity-check rows.
	ParitySymbols = 12
	// MinDistance is the minimum Hamming distance of the code.
	MinDistance = 8
	// CoveringRadius is the largest weight any coset leader can have.
	CoveringRadius = 4
)

// Pattern is a 24-bit vector over GF(2); bit i holds coordinate i.
type Pattern uint32

// Syndrome is the 12-bit image of a Pattern under the parity-check matrix;
// bit j holds the parity of check row j.
type Syndrome uint16

// PatternMask covers the bits a Pattern may use.
const PatternMask Pattern = 1<<CodewordLength - 1

// ErrConstantIntegrity indicates the embedded generator constant failed
// validation: wrong shape or not full row rank.
var ErrConstantIntegrity = errors.New("generator matrix integrity")

// generatorBits is the published standard-form generator G = [I₁₂ | B] for
// the (24,12,8) code, rows in column order with column 0 leftmost. B is the
// bordered quadratic-residue matrix: rows 0..10 are cyclic shifts of the
// length-11 mask with 1s at 0 and the squares mod 11 ({1,3,4,5,9}), each
// bordered by 1, and row 11 borders the all-ones row with 0.
var generatorBits = [MessageLength][CodewordLength]uint8{
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0 /**/, 1, 1, 0, 1, 1, 1, 0, 0, 0, 1, 0, 1},
	{0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0 /**/, 1, 0, 1, 1, 1, 0, 0, 0, 1, 0, 1, 1},
	{0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0 /**/, 0, 1, 1, 1, 0, 0, 0, 1, 0, 1, 1, 1},
	{0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0 /**/, 1, 1, 1, 0, 0, 0, 1, 0, 1, 1, 0, 1},
	{0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0 /**/, 1, 1, 0, 0, 0, 1, 0, 1, 1, 0, 1, 1},
	{0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0 /**/, 1, 0, 0, 0, 1, 0, 1, 1, 0, 1, 1, 1},
	{0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0 /**/, 0, 0, 0, 1, 0, 1, 1, 0, 1, 1, 1, 1},
	{0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0 /**/, 0, 0, 1, 0, 1, 1, 0, 1, 1, 1, 0, 1},
	{0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0 /**/, 0, 1, 0, 1, 1, 0, 1, 1, 1, 0, 0, 1},
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0 /**/, 1, 0, 1, 1, 0, 1, 1, 1, 0, 0, 0, 1},
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0 /**/, 0, 1, 1, 0, 1, 1, 1, 0, 0, 0, 1, 1},
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1 /**/, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0},
}

// generatorRows and parityRows hold the same matrices packed into 24-bit row
// masks; bit i of a row mask is column i.
var (
	generatorRows [MessageLength]Pattern
	parityRows    [ParitySymbols]Pattern
)

func init() {
	for i := 0; i < MessageLength; i++ {
		var row Pattern
		for c := 0; c < CodewordLength; c++ {
			if generatorBits[i][c] == 1 {
				row |= 1 << c
			}
		}
		generatorRows[i] = row
	}

	// H = [Pᵗ | I₁₂]: bit i (i<12) of check row j is G[i][12+j], and the
	// identity contributes bit 12+j.
	for j := 0; j < ParitySymbols; j++ {
		row := Pattern(1) << (MessageLength + j)
		for i := 0; i < MessageLength; i++ {
			if generatorBits[i][MessageLength+j] == 1 {
				row |= 1 << i
			}
		}
		parityRows[j] = row
	}
}

// ComputeSyndrome returns H·e over GF(2): bit j of the result is the parity
// of the AND between check row j and e. The packing is fixed so bit j of the
// parity vector lands in bit j of the Syndrome, making regenerated tables
// bit-exact.
func ComputeSyndrome(e Pattern) Syndrome {
	var s Syndrome
	for j := 0; j < ParitySymbols; j++ {
		s |= Syndrome(bits.OnesCount32(uint32(parityRows[j]&e))&1) << j
	}
	return s
}

// Codeword encodes the low 12 bits of message into its codeword m·G; bit k of
// the message selects generator row k.
func Codeword(message uint16) Pattern {
	var c Pattern
	for k := 0; k < MessageLength; k++ {
		if message&(1<<k) != 0 {
			c ^= generatorRows[k]
		}
	}
	return c
}

// Weight returns the Hamming weight of p.
func (p Pattern) Weight() int {
	return bits.OnesCount32(uint32(p))
}

// Generator returns the 12×24 generator matrix as a sparsemat matrix.
func Generator() mat.SparseMat {
	return toSparse(generatorRows[:])
}

// ParityCheck returns the 12×24 parity-check matrix as a sparsemat matrix.
func ParityCheck() mat.SparseMat {
	return toSparse(parityRows[:])
}

func toSparse(rows []Pattern) mat.SparseMat {
	m := mat.DOKMat(len(rows), CodewordLength)
	for i, row := range rows {
		for c := 0; c < CodewordLength; c++ {
			if row&(1<<c) != 0 {
				m.Set(i, c, 1)
			}
		}
	}
	return m
}

// Validate checks the embedded constant: every row confined to 24 bits, full
// row rank over GF(2), and H·gᵗ=0 for every generator row g. Any failure is a
// corrupted build-time constant and wraps ErrConstantIntegrity.
func Validate() error {
	for i, row := range generatorRows {
		if row&^PatternMask != 0 {
			return fmt.Errorf("%w: generator row %v exceeds %v columns", ErrConstantIntegrity, i, CodewordLength)
		}
	}

	if r := rankGF2(generatorRows); r != MessageLength {
		return fmt.Errorf("%w: generator rank == %v but %v required", ErrConstantIntegrity, r, MessageLength)
	}

	// cross-check the derivation through sparsemat: H·gᵗ must be zero
	H := ParityCheck()
	G := Generator()
	for i := 0; i < MessageLength; i++ {
		g := G.Row(i)
		for j := 0; j < ParitySymbols; j++ {
			if H.Row(j).Dot(g) > 0 {
				return fmt.Errorf("%w: H row %v not orthogonal to generator row %v", ErrConstantIntegrity, j, i)
			}
		}
	}
	return nil
}

// rankGF2 runs Gaussian elimination over the packed rows and counts pivots.
func rankGF2(rows [MessageLength]Pattern) int {
	rank := 0
	for c := 0; c < CodewordLength && rank < len(rows); c++ {
		pivot := -1
		for r := rank; r < len(rows); r++ {
			if rows[r]&(1<<c) != 0 {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			continue
		}
		rows[rank], rows[pivot] = rows[pivot], rows[rank]
		for r := 0; r < len(rows); r++ {
			if r != rank && rows[r]&(1<<c) != 0 {
				rows[r] ^= rows[rank]
			}
		}
		rank++
	}
	return rank
}
