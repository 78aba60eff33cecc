package alphabet

import (
	"errors"
	"testing"
)

func TestValidateNucleotide(t *testing.T) {
	cases := []struct {
		seq  string
		want error
	}{
		{"ACGT", nil},
		{"acgtu", nil},
		{"RYSWKMBDHVN", nil},
		{"  ACGT  ", nil},
		{"NNNN", nil},
		{"ACG", ErrQueryTooShort},
		{"", ErrQueryTooShort},
		{"   A   ", ErrQueryTooShort},
		{"ACGE", ErrInvalidAlphabet},
		{"ACG-T", ErrInvalidAlphabet},
		{"ACGT1", ErrInvalidAlphabet},
	}
	for _, c := range cases {
		err := Validate(c.seq, Nucleotide)
		if !errors.Is(err, c.want) {
			t.Errorf("Validate(%q, nt) = %v, want %v", c.seq, err, c.want)
		}
	}
}

func TestValidateAminoAcid(t *testing.T) {
	cases := []struct {
		seq  string
		want error
	}{
		{"MHAC", nil},
		{"acdefghiklmnpqrstvwy", nil},
		{"BZJX", nil},
		{"MHC", ErrQueryTooShort},
		{"MHA*", ErrInvalidAlphabet},
		{"MHAO", ErrInvalidAlphabet},
	}
	for _, c := range cases {
		err := Validate(c.seq, AminoAcid)
		if !errors.Is(err, c.want) {
			t.Errorf("Validate(%q, aa) = %v, want %v", c.seq, err, c.want)
		}
	}
}

func TestParseType(t *testing.T) {
	if typ, err := ParseType("nt"); err != nil || typ != Nucleotide {
		t.Fatalf("ParseType(nt) = %v, %v", typ, err)
	}
	if typ, err := ParseType(" AA "); err != nil || typ != AminoAcid {
		t.Fatalf("ParseType(AA) = %v, %v", typ, err)
	}
	if _, err := ParseType("protein"); err == nil {
		t.Fatal("expected error for unknown type")
	}
}
