// internal/cli/command.go
package cli

import (
	"github.com/spf13/cobra"

	"vlocate/internal/version"
)

// NewCommand builds the root cobra command. The run callback receives the
// parsed Options; flag registration stays here so the app layer only wires.
func NewCommand(opts *Options, run func(cmd *cobra.Command, opts *Options) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vlocate",
		Short: "Locate query sequences on the HXB2 or SIVmm239 reference genome",
		Long: `vlocate maps nucleotide or amino-acid query sequences onto one of the two
canonical retroviral reference genomes (HXB2, SIVmm239) and reports 1-based
coordinates, percent identity, and strand orientation for the best placement.`,
		Version:       version.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringArrayVarP(&opts.Queries, "query", "q", nil,
		"query sequence (repeatable; '-' reads one query per line from stdin)")
	f.StringVarP(&opts.Reference, "reference", "r", "HXB2",
		"reference genome, either HXB2 or SIVmm239")
	f.StringVarP(&opts.TypeQuery, "type-query", "t", "nt",
		"type of query, either nt or aa")
	f.IntVarP(&opts.Algorithm, "algorithm", "a", 1,
		"locator algorithm: 1 is accurate but slower, 2 is fast but less accurate")
	f.IntVar(&opts.Threads, "threads", 0, "worker threads for batches (0 = all CPUs)")
	f.StringVarP(&opts.Output, "output", "o", OutputText, "output format: text | json")
	f.BoolVar(&opts.NoHeader, "no-header", false, "suppress the header line in text output")
	f.BoolVar(&opts.Pretty, "pretty", false, "pretty ASCII alignment block after each text row")
	f.BoolVar(&opts.Quiet, "quiet", false, "suppress warnings on stderr")
	f.BoolVar(&opts.Verbose, "verbose", false, "print a batch summary to stderr")
	f.StringVar(&opts.Settings, "settings", "", "settings YAML overriding built-in defaults")
	f.IntVar(&opts.MinIdentity, "min-identity", -1,
		"warn when a placement falls below this percent identity (-1 = from settings)")

	_ = cmd.MarkFlagRequired("query")

	return cmd
}
