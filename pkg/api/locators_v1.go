// pkg/api/locators_v1.go
package api

// LocatorV1 is the stable JSON schema for per-query locator results.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
// Field names and semantics mirror the text output convention:
// start_pos end_pos similarity reverse_complement query_seq reference_match.
type LocatorV1 struct {
	Query             string `json:"query"`
	StartPos          int    `json:"start_pos,omitempty"`
	EndPos            int    `json:"end_pos,omitempty"`
	Similarity        int    `json:"similarity"`
	ReverseComplement bool   `json:"reverse_complement"`
	QuerySeq          string `json:"query_seq,omitempty"`
	ReferenceMatch    string `json:"reference_match,omitempty"`
	Frame             int    `json:"frame,omitempty"` // 1-3 for aa queries
	Error             string `json:"error,omitempty"` // set when the query failed
}
