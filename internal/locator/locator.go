// internal/locator/locator.go
package locator

import (
	"fmt"

	"vlocate/internal/align"
)

// Locator is the public result for one query: the placement expressed in the
// 1-based coordinate convention of the chosen reference genome. Plain value
// type; duplicable without aliasing and never mutated after Build.
//
// For amino-acid queries the coordinates are residue positions within the
// winning translated frame (Frame 1-3); nucleotide queries carry Frame 0 and
// genomic nucleotide positions.
type Locator struct {
	StartPos          int
	EndPos            int
	Similarity        int
	ReverseComplement bool
	QuerySeq          string
	ReferenceMatch    string
	Frame             int
}

// Build maps an alignment placement onto reference numbering and slices the
// matched reference substring. QuerySeq always records the query as
// submitted, never its reverse complement; orientation travels in the flag.
// Pure transformation; cannot fail for a valid alignment result.
func Build(query string, ref []byte, res align.Result, frame int) Locator {
	return Locator{
		StartPos:          res.Start + 1,
		EndPos:            res.End,
		Similarity:        res.Similarity(),
		ReverseComplement: res.ReverseComplement,
		QuerySeq:          query,
		ReferenceMatch:    string(ref[res.Start:res.End]),
		Frame:             frame,
	}
}

// String renders the canonical tab-separated line:
// start_pos end_pos similarity reverse_complement query_seq reference_match
func (l Locator) String() string {
	return fmt.Sprintf("%d\t%d\t%d\t%t\t%s\t%s",
		l.StartPos, l.EndPos, l.Similarity, l.ReverseComplement, l.QuerySeq, l.ReferenceMatch)
}
