// internal/align/align.go
package align

import (
	"errors"
	"fmt"
	"math"

	"vlocate/internal/alphabet"
	"vlocate/internal/match"
)

// Algorithm selects one of the two interchangeable placement strategies.
// Both are chosen once per batch and share the Align contract.
type Algorithm int

const (
	Accurate Algorithm = 1 // semi-global alignment, gap-tolerant
	Fast     Algorithm = 2 // anchored window scan, no gaps
)

// ParseAlgorithm maps the CLI numeric choice to an Algorithm.
func ParseAlgorithm(n int) (Algorithm, error) {
	switch n {
	case 1:
		return Accurate, nil
	case 2:
		return Fast, nil
	}
	return Accurate, fmt.Errorf("algorithm must be either 1 or 2, got %d", n)
}

func (a Algorithm) String() string {
	if a == Fast {
		return "fast"
	}
	return "accurate"
}

// Params are the scoring and heuristic knobs, normally sourced from config.
type Params struct {
	Match    int // score for a compatible pair
	Mismatch int // score for an incompatible pair
	Gap      int // linear gap penalty (negative)
	Anchor   int // seed length for the fast algorithm
}

// DefaultParams mirrors the settings shipped in config/settings.yaml.
func DefaultParams() Params {
	return Params{Match: 1, Mismatch: -1, Gap: -2, Anchor: 12}
}

// ErrReferenceTooShort is returned when the reference cannot contain the
// query. Unreachable for sane queries against the built-in genomes but a
// defined path for oversized input.
var ErrReferenceTooShort = errors.New("reference sequence shorter than query")

// Result is the best-scoring placement of one query on one reference.
// Start/End are a 0-based half-open span on the reference. The whole query is
// always placed, so End-Start differs from the query length only by internal
// indels. Length counts aligned columns including gaps; Score is the
// alignment score under Params for every algorithm, so results from either
// algorithm compare on one scale.
type Result struct {
	Start             int
	End               int
	Matches           int
	Length            int
	Score             int
	ReverseComplement bool
}

// Similarity is the percent identity over the aligned region, rounded to the
// nearest whole percent.
func (r Result) Similarity() int {
	if r.Length == 0 {
		return 0
	}
	return int(math.Round(100 * float64(r.Matches) / float64(r.Length)))
}

// Engine runs one algorithm with one scoring setup. It holds no mutable
// state, so a single Engine may be shared by concurrent workers.
type Engine struct {
	alg    Algorithm
	typ    alphabet.Type
	params Params
	compat match.Func
}

func New(alg Algorithm, t alphabet.Type, p Params) *Engine {
	return &Engine{alg: alg, typ: t, params: p, compat: match.ForType(t)}
}

// Align locates the best placement of query on ref. Nucleotide queries are
// additionally tried as reverse complement; the orientation with the higher
// score wins and forward wins exact ties. Low-similarity placements are still
// returned: the caller decides what to do with a weak best effort.
func (e *Engine) Align(query, ref []byte) (Result, error) {
	if len(ref) < len(query) {
		return Result{}, fmt.Errorf("%w: %d < %d", ErrReferenceTooShort, len(ref), len(query))
	}
	fwd := e.alignOne(query, ref)
	if e.typ != alphabet.Nucleotide {
		return fwd, nil
	}
	rev := e.alignOne(match.RevComp(query), ref)
	if rev.Score > fwd.Score {
		rev.ReverseComplement = true
		return rev, nil
	}
	return fwd, nil
}

func (e *Engine) alignOne(query, ref []byte) Result {
	if e.alg == Fast {
		if res, ok := e.fastScan(query, ref); ok {
			return res
		}
		// Anchor found nothing usable; fall back to the accurate aligner
		// rather than reporting no placement.
	}
	return e.semiGlobal(query, ref)
}
