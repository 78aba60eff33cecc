// internal/pretty/pretty.go
package pretty

import (
	"fmt"
	"strings"

	"vlocate/internal/locator"
	"vlocate/internal/match"
)

const linePrefix = "# "

// Render draws a compact ASCII block for one locator: the query as it was
// placed (reverse-complemented when the match is on the minus strand), match
// bars where the two strings are comparable position by position, and the
// reference window with its coordinates. Gapped placements from the accurate
// algorithm have unequal string lengths; those render without a bars row.
func Render(l locator.Locator, genome string) string {
	display := strings.ToUpper(l.QuerySeq)
	label := "query"
	strand := "+"
	if l.ReverseComplement {
		display = string(match.RevComp([]byte(display)))
		label = "query(rc)"
		strand = "-"
	}

	where := fmt.Sprintf("(%d..%d, %d%%, %s)", l.StartPos, l.EndPos, l.Similarity, strand)
	if l.Frame > 0 {
		where = fmt.Sprintf("(%d..%d, %d%%, frame %d)", l.StartPos, l.EndPos, l.Similarity, l.Frame)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s%-10s 5'-%s-3'\n", linePrefix, label, display)
	if len(display) == len(l.ReferenceMatch) {
		compat := match.Nucleotide
		if l.Frame > 0 {
			compat = match.AminoAcid
		}
		bars := make([]byte, len(display))
		for i := 0; i < len(display); i++ {
			if compat(display[i], l.ReferenceMatch[i]) {
				bars[i] = '|'
			} else {
				bars[i] = ' '
			}
		}
		fmt.Fprintf(&b, "%s%-10s    %s\n", linePrefix, "", bars)
	}
	fmt.Fprintf(&b, "%s%-10s 5'-%s-3'  %s\n", linePrefix, genome, l.ReferenceMatch, where)
	return b.String()
}
