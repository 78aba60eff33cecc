package cli

import (
	"errors"
	"testing"

	"vlocate/internal/align"
	"vlocate/internal/alphabet"
	"vlocate/internal/refseq"
)

func validOptions() Options {
	return Options{
		Reference:   "HXB2",
		TypeQuery:   "nt",
		Algorithm:   1,
		Output:      OutputText,
		MinIdentity: -1,
	}
}

func TestResolveValid(t *testing.T) {
	o := validOptions()
	r, err := o.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if r.Genome != refseq.HXB2 || r.Type != alphabet.Nucleotide || r.Algorithm != align.Accurate {
		t.Errorf("unexpected resolution: %+v", r)
	}
}

func TestResolveRejects(t *testing.T) {
	cases := []func(*Options){
		func(o *Options) { o.Reference = "NL4-3" },
		func(o *Options) { o.TypeQuery = "protein" },
		func(o *Options) { o.Algorithm = 3 },
		func(o *Options) { o.Output = "xml" },
	}
	for i, mutate := range cases {
		o := validOptions()
		mutate(&o)
		if _, err := o.Resolve(); !errors.Is(err, ErrUsage) {
			t.Errorf("case %d: got %v, want ErrUsage", i, err)
		}
	}
}

func TestResolveCaseInsensitiveReference(t *testing.T) {
	o := validOptions()
	o.Reference = "sivmm239"
	r, err := o.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if r.Genome != refseq.SIVmm239 {
		t.Errorf("genome = %v", r.Genome)
	}
}
