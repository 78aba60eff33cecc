// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"vlocate/internal/pipeline"
	"vlocate/pkg/api"
)

// ToAPILocator converts one outcome to the stable wire schema (v1). Failed
// queries keep their query text and carry the error string instead of
// coordinates.
func ToAPILocator(query string, o pipeline.Outcome) api.LocatorV1 {
	if o.Err != nil {
		return api.LocatorV1{Query: query, Error: o.Err.Error()}
	}
	l := o.Locator
	return api.LocatorV1{
		Query:             query,
		StartPos:          l.StartPos,
		EndPos:            l.EndPos,
		Similarity:        l.Similarity,
		ReverseComplement: l.ReverseComplement,
		QuerySeq:          l.QuerySeq,
		ReferenceMatch:    l.ReferenceMatch,
		Frame:             l.Frame,
	}
}

// WriteJSON writes a single pretty-indented JSON array, one element per
// query, failed ones included.
func WriteJSON(w io.Writer, queries []string, outcomes []pipeline.Outcome) error {
	list := make([]api.LocatorV1, 0, len(outcomes))
	for i, o := range outcomes {
		list = append(list, ToAPILocator(queries[i], o))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}
