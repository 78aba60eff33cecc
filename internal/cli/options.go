// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"

	"vlocate/internal/align"
	"vlocate/internal/alphabet"
	"vlocate/internal/refseq"
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// ErrUsage marks errors caused by invalid invocation rather than by a run
// that failed; the app maps it to exit code 2.
var ErrUsage = errors.New("usage")

// Options holds all CLI flags as parsed by cobra.
type Options struct {
	// Queries as given; "-" reads one query per line from stdin
	Queries []string

	Reference string // HXB2 | SIVmm239
	TypeQuery string // nt | aa
	Algorithm int    // 1 | 2

	// Performance
	Threads int // 0 = all CPUs

	// Output
	Output   string
	NoHeader bool
	Pretty   bool
	Quiet    bool
	Verbose  bool

	// Settings file overriding built-in defaults; optional
	Settings string

	// Warn threshold override; -1 = take the value from settings
	MinIdentity int
}

// Resolved is the validated, typed view of Options consumed by the core.
type Resolved struct {
	Genome    refseq.Genome
	Type      alphabet.Type
	Algorithm align.Algorithm
	Output    string
}

// Resolve validates the stringly flag values and maps them onto core types.
// All failures wrap ErrUsage: bad flag values are invocation errors, caught
// before the locator core ever runs.
func (o *Options) Resolve() (Resolved, error) {
	var r Resolved
	var err error
	if r.Genome, err = refseq.ParseGenome(o.Reference); err != nil {
		return r, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if r.Type, err = alphabet.ParseType(o.TypeQuery); err != nil {
		return r, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if r.Algorithm, err = align.ParseAlgorithm(o.Algorithm); err != nil {
		return r, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	switch o.Output {
	case OutputText, OutputJSON:
		r.Output = o.Output
	default:
		return r, fmt.Errorf("%w: output must be either 'text' or 'json', got %q", ErrUsage, o.Output)
	}
	return r, nil
}
