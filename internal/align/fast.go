// internal/align/fast.go
package align

import (
	"bytes"
	"strings"

	"vlocate/internal/alphabet"
)

// fastScan is the fast algorithm: take an exact anchor from the head of the
// query, jump between anchor occurrences on the reference, and score each
// candidate window positionally (no gaps). Near-linear in the reference
// length; misses placements whose true alignment needs an indel.
//
// The boolean is false when the anchor produced no usable candidate window,
// in which case the caller escalates to the accurate aligner.
func (e *Engine) fastScan(query, ref []byte) (Result, bool) {
	m := len(query)
	k := e.params.Anchor
	if k <= 0 || k > m {
		k = m
	}
	anchor := query[:k]

	if !e.unambiguous(anchor) {
		// No exact seed possible; score every offset instead.
		return e.scanAll(query, ref), true
	}

	var best Result
	found := false
	for i := 0; ; {
		j := bytes.Index(ref[i:], anchor)
		if j < 0 {
			break
		}
		pos := i + j
		if pos+m <= len(ref) {
			res := e.scoreWindow(query, ref, pos)
			if !found || res.Matches > best.Matches {
				best = res
				found = true
			}
		}
		i = pos + 1
	}
	return best, found
}

// scanAll scores the query at every reference offset and keeps the best
// window, preferring the leftmost on ties.
func (e *Engine) scanAll(query, ref []byte) Result {
	best := e.scoreWindow(query, ref, 0)
	for off := 1; off+len(query) <= len(ref); off++ {
		if res := e.scoreWindow(query, ref, off); res.Matches > best.Matches {
			best = res
		}
	}
	return best
}

func (e *Engine) scoreWindow(query, ref []byte, off int) Result {
	matches := 0
	for i, c := range query {
		if e.compat(c, ref[off+i]) {
			matches++
		}
	}
	// Score the ungapped window with the shared scoring params so it compares
	// directly against a semi-global fallback of the other orientation.
	score := matches*e.params.Match + (len(query)-matches)*e.params.Mismatch
	return Result{Start: off, End: off + len(query), Matches: matches, Length: len(query), Score: score}
}

// unambiguous reports whether every character is a concrete residue of the
// engine's alphabet, so an exact byte search for it cannot miss a compatible
// window. Ambiguity codes (N, R, ... for nt; B, Z, J, X for aa) disqualify
// the anchor from exact seeding.
func (e *Engine) unambiguous(seq []byte) bool {
	concrete := "ACGT"
	if e.typ == alphabet.AminoAcid {
		concrete = "ACDEFGHIKLMNPQRSTVWY"
	}
	for _, c := range seq {
		if !strings.ContainsRune(concrete, rune(c)) {
			return false
		}
	}
	return true
}
