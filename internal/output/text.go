// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"vlocate/internal/locator"
	"vlocate/internal/pipeline"
)

// WriteText prints one TSV row per located query:
// start_pos end_pos similarity reverse_complement query_seq reference_match
// Failed queries produce no stdout row; the caller reports them on stderr.
func WriteText(w io.Writer, outcomes []pipeline.Outcome, header bool) error {
	return WriteTextWithRenderer(w, outcomes, header, nil)
}

// WriteTextWithRenderer writes TSV rows and, when render is non-nil, an
// ASCII block after each row (--pretty).
func WriteTextWithRenderer(w io.Writer, outcomes []pipeline.Outcome, header bool, render func(locator.Locator) string) error {
	if header {
		if _, err := fmt.Fprintln(w, "start_pos\tend_pos\tsimilarity\treverse_complement\tquery_seq\treference_match"); err != nil {
			return err
		}
	}
	for _, o := range outcomes {
		if o.Err != nil {
			continue
		}
		l := o.Locator
		_, err := fmt.Fprintf(w, "%d\t%d\t%d\t%t\t%s\t%s\n",
			l.StartPos, l.EndPos, l.Similarity, l.ReverseComplement, l.QuerySeq, l.ReferenceMatch)
		if err != nil {
			return err
		}
		if render != nil {
			if _, err := io.WriteString(w, render(l)); err != nil {
				return err
			}
		}
	}
	return nil
}
