// internal/match/iupac.go
package match

import "vlocate/internal/alphabet"

/* -------------------------- IUPAC lookup tables -------------------------- */

var ntMask [256]uint8 // bit0=A bit1=C bit2=G bit3=T

func init() {
	set := func(c byte, bits uint8) {
		ntMask[c] = bits
		ntMask[c+'a'-'A'] = bits
	}
	set('A', 1)       // 0001
	set('C', 2)       // 0010
	set('G', 4)       // 0100
	set('T', 8)       // 1000
	set('U', 8)       // RNA input, pairs like T
	set('R', 1|4)     // A/G
	set('Y', 2|8)     // C/T
	set('S', 2|4)     // C/G
	set('W', 1|8)     // A/T
	set('K', 4|8)     // G/T
	set('M', 1|2)     // A/C
	set('B', 2|4|8)   // C/G/T
	set('D', 1|4|8)   // A/G/T
	set('H', 1|2|8)   // A/C/T
	set('V', 1|2|4)   // A/C/G
	set('N', 1|2|4|8) // any
}

// One bit per standard residue, in iupacAmino order; ambiguity codes get the
// union of their expansions and X gets all twenty. Stop ('*', from translated
// frames) keeps its own bit so it only ever matches another stop.
var aaMask [256]uint32

const iupacAmino = "ACDEFGHIKLMNPQRSTVWY"

func init() {
	set := func(c byte, bits uint32) {
		aaMask[c] = bits
		if c >= 'A' && c <= 'Z' {
			aaMask[c+'a'-'A'] = bits
		}
	}
	var all uint32
	for i, c := range []byte(iupacAmino) {
		set(c, 1<<uint(i))
		all |= 1 << uint(i)
	}
	set('B', aaMask['D']|aaMask['N'])
	set('Z', aaMask['E']|aaMask['Q'])
	set('J', aaMask['I']|aaMask['L'])
	set('X', all)
	set('*', 1<<20)
}

/* ------------------------------ Func ----------------------------------- */

// Func reports whether two residues from the same alphabet are compatible.
// It is the single identity definition shared by both alignment algorithms.
type Func func(a, b byte) bool

// Nucleotide is symmetric: either operand may carry the ambiguity code, so
// N matches every base and e.g. R matches A or G in both directions.
func Nucleotide(a, b byte) bool {
	return ntMask[a]&ntMask[b] != 0
}

// AminoAcid matches exact residues plus the B/Z/J/X degeneracies, again in
// either direction.
func AminoAcid(a, b byte) bool {
	return aaMask[a]&aaMask[b] != 0
}

// ForType picks the predicate for a query alphabet.
func ForType(t alphabet.Type) Func {
	if t == alphabet.AminoAcid {
		return AminoAcid
	}
	return Nucleotide
}
