// internal/refseq/refseq.go
package refseq

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"sync"
)

//go:embed data/hxb2.fasta data/sivmm239.fasta
var dataFS embed.FS

// Genome selects one of the two canonical reference genomes. Every query is
// located in the coordinate system of one of these; user-supplied references
// are not supported.
type Genome int

const (
	HXB2 Genome = iota
	SIVmm239
)

func (g Genome) String() string {
	if g == SIVmm239 {
		return "SIVmm239"
	}
	return "HXB2"
}

func (g Genome) file() string {
	if g == SIVmm239 {
		return "data/sivmm239.fasta"
	}
	return "data/hxb2.fasta"
}

// ParseGenome maps the CLI spelling to a Genome, case-insensitively.
func ParseGenome(s string) (Genome, error) {
	switch {
	case strings.EqualFold(s, "HXB2"):
		return HXB2, nil
	case strings.EqualFold(s, "SIVmm239"):
		return SIVmm239, nil
	}
	return HXB2, fmt.Errorf("reference genome must be either 'HXB2' or 'SIVmm239', got %q", s)
}

/* ---------------------------- lazy shared data --------------------------- */

type refData struct {
	once   sync.Once
	seq    []byte
	frames [3][]byte
}

var refs [2]refData

func (g Genome) load() *refData {
	d := &refs[g]
	d.once.Do(func() {
		raw, err := dataFS.ReadFile(g.file())
		if err != nil {
			panic("refseq: embedded reference missing: " + err.Error())
		}
		d.seq = parseFASTA(raw)
		for f := 0; f < 3; f++ {
			d.frames[f] = Translate(d.seq[f:])
		}
	})
	return d
}

// Sequence returns the reference nucleotide sequence. The slice is shared,
// read-only data; callers must not modify it.
func (g Genome) Sequence() []byte { return g.load().seq }

// Frames returns the three translated reading frames of the reference, used
// when locating amino-acid queries. Shared read-only data, same as Sequence.
func (g Genome) Frames() [3][]byte { return g.load().frames }

// parseFASTA extracts the uppercased sequence from a single-record FASTA blob.
func parseFASTA(raw []byte) []byte {
	out := make([]byte, 0, len(raw))
	for _, line := range bytes.Split(raw, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '>' || line[0] == ';' {
			continue
		}
		out = append(out, bytes.ToUpper(line)...)
	}
	return out
}
