// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"vlocate/internal/align"
	"vlocate/internal/alphabet"
	"vlocate/internal/locator"
	"vlocate/internal/refseq"
)

// Options is the shared, read-only configuration for one batch.
type Options struct {
	Genome    refseq.Genome
	Type      alphabet.Type
	Algorithm align.Algorithm
	Params    align.Params
	Threads   int // worker goroutines; 0 = all CPUs
}

// Outcome is one query's result: either a Locator or the error that stopped
// that query. Failures are per-query and never abort siblings.
type Outcome struct {
	Locator locator.Locator
	Err     error
}

// ErrEmptyQuerySet is returned when Locate is invoked with zero queries.
var ErrEmptyQuerySet = errors.New("no queries to locate")

// Locate runs validation, alignment and coordinate mapping once per query
// across a bounded worker pool. The returned slice is index-aligned with the
// input regardless of completion order. The only batch-level errors are an
// empty query set and context cancellation.
func Locate(ctx context.Context, queries []string, opts Options) ([]Outcome, error) {
	if len(queries) == 0 {
		return nil, ErrEmptyQuerySet
	}
	threads := opts.Threads
	if threads < 1 {
		threads = runtime.NumCPU()
	}

	// One stateless engine shared by all workers; reference data is loaded
	// once up front so workers only ever read it.
	eng := align.New(opts.Algorithm, opts.Type, opts.Params)
	seq := opts.Genome.Sequence()
	frames := opts.Genome.Frames()

	out := make([]Outcome, len(queries))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = locateOne(q, opts.Type, eng, seq, frames)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func locateOne(raw string, typ alphabet.Type, eng *align.Engine, seq []byte, frames [3][]byte) Outcome {
	if err := alphabet.Validate(raw, typ); err != nil {
		return Outcome{Err: err}
	}
	submitted := strings.TrimSpace(raw)
	query := []byte(strings.ToUpper(submitted))

	if typ == alphabet.Nucleotide {
		res, err := eng.Align(query, seq)
		if err != nil {
			return Outcome{Err: err}
		}
		return Outcome{Locator: locator.Build(submitted, seq, res, 0)}
	}

	// Amino-acid queries run against each translated frame; the best score
	// wins and the lowest frame wins ties.
	best := Outcome{Err: fmt.Errorf("%w: query exceeds every reading frame", align.ErrReferenceTooShort)}
	bestScore := 0
	for f := 0; f < 3; f++ {
		res, err := eng.Align(query, frames[f])
		if err != nil {
			continue
		}
		if best.Err != nil || res.Score > bestScore {
			best = Outcome{Locator: locator.Build(submitted, frames[f], res, f+1)}
			bestScore = res.Score
		}
	}
	return best
}
