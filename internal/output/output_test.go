package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"vlocate/internal/locator"
	"vlocate/internal/pipeline"
	"vlocate/pkg/api"
)

func sample() []pipeline.Outcome {
	return []pipeline.Outcome{
		{Locator: locator.Locator{StartPos: 2001, EndPos: 2040, Similarity: 100,
			QuerySeq: "ACGTACGT", ReferenceMatch: "ACGTACGT"}},
		{Err: errors.New("query sequence too short: 2 residues (minimum 4)")},
		{Locator: locator.Locator{StartPos: 5, EndPos: 12, Similarity: 88,
			ReverseComplement: true, QuerySeq: "TTTTAAAA", ReferenceMatch: "TTTTAAGA"}},
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, sample(), true); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 rows:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "start_pos\tend_pos") {
		t.Errorf("missing header: %q", lines[0])
	}
	if lines[1] != "2001\t2040\t100\tfalse\tACGTACGT\tACGTACGT" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if !strings.Contains(lines[2], "\ttrue\t") {
		t.Errorf("row 2 should carry the reverse_complement flag: %q", lines[2])
	}
}

func TestWriteTextNoHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, sample(), false); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "start_pos") {
		t.Error("header printed despite header=false")
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	queries := []string{"ACGTACGT", "AC", "TTTTAAAA"}
	if err := WriteJSON(&buf, queries, sample()); err != nil {
		t.Fatal(err)
	}
	var list []api.LocatorV1
	if err := json.Unmarshal(buf.Bytes(), &list); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("got %d elements, want 3", len(list))
	}
	if list[0].StartPos != 2001 || list[0].Error != "" {
		t.Errorf("element 0: %+v", list[0])
	}
	if list[1].Error == "" || list[1].StartPos != 0 {
		t.Errorf("element 1 should carry the error: %+v", list[1])
	}
	if !list[2].ReverseComplement {
		t.Errorf("element 2 lost orientation: %+v", list[2])
	}
}
