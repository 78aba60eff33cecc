// internal/alphabet/alphabet.go
package alphabet

import (
	"errors"
	"fmt"
	"strings"
)

// Type selects which residue alphabet a query is validated against.
type Type int

const (
	Nucleotide Type = iota
	AminoAcid
)

func (t Type) String() string {
	if t == AminoAcid {
		return "aa"
	}
	return "nt"
}

// ParseType maps the CLI spelling ("nt" / "aa") to a Type.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nt":
		return Nucleotide, nil
	case "aa":
		return AminoAcid, nil
	}
	return Nucleotide, fmt.Errorf("query type must be either 'nt' or 'aa', got %q", s)
}

// MinQueryLen is the shortest query worth aligning; anything at or below
// three residues is rejected.
const MinQueryLen = 4

var (
	ErrQueryTooShort   = errors.New("query sequence too short")
	ErrInvalidAlphabet = errors.New("invalid character for alphabet")
)

/* ------------------------- IUPAC membership sets ------------------------- */

// Standard bases plus every IUPAC degeneracy code; U is accepted for RNA input.
const iupacNucleotide = "ACGTURYSWKMBDHVN"

// The 20 standard residues plus the IUPAC ambiguity codes B, Z, J and X.
const iupacAminoAcid = "ACDEFGHIKLMNPQRSTVWYBZJX"

var ntSet, aaSet [256]bool

func init() {
	for _, c := range []byte(iupacNucleotide) {
		ntSet[c] = true
		ntSet[c+'a'-'A'] = true
	}
	for _, c := range []byte(iupacAminoAcid) {
		aaSet[c] = true
		aaSet[c+'a'-'A'] = true
	}
}

// Validate checks a raw query against the declared alphabet. The query is
// trimmed before the length check; membership is case-insensitive. It returns
// ErrQueryTooShort or ErrInvalidAlphabet (wrapped with context), nil otherwise.
func Validate(raw string, t Type) error {
	seq := strings.TrimSpace(raw)
	if len(seq) < MinQueryLen {
		return fmt.Errorf("%w: %d residues (minimum %d)", ErrQueryTooShort, len(seq), MinQueryLen)
	}
	set := &ntSet
	if t == AminoAcid {
		set = &aaSet
	}
	for i := 0; i < len(seq); i++ {
		if !set[seq[i]] {
			return fmt.Errorf("%w %s: %q at position %d", ErrInvalidAlphabet, t, seq[i], i+1)
		}
	}
	return nil
}
