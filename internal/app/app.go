// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"vlocate/config"
	"vlocate/internal/align"
	"vlocate/internal/cli"
	"vlocate/internal/cmdutil"
	"vlocate/internal/locator"
	"vlocate/internal/output"
	"vlocate/internal/pipeline"
	"vlocate/internal/pretty"
)

// RunContext wires flags, settings, the batch pipeline, and the writers, and
// maps the result to an exit code: 0 on success, 1 when the run failed (or
// no query could be located), 2 for invocation errors.
func RunContext(parent context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts := &cli.Options{}
	cmd := cli.NewCommand(opts, func(cmd *cobra.Command, opts *cli.Options) error {
		return run(parent, cmd, opts)
	})
	cmd.SetArgs(argv)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		if errors.Is(err, cli.ErrUsage) || isFlagError(err) {
			return 2
		}
		return 1
	}
	return 0
}

func Run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdin, stdout, stderr)
}

func run(ctx context.Context, cmd *cobra.Command, opts *cli.Options) error {
	resolved, err := opts.Resolve()
	if err != nil {
		return err
	}
	cfg, err := config.New(opts.Settings)
	if err != nil {
		return err
	}

	queries, err := expandQueries(opts.Queries, cmd.InOrStdin())
	if err != nil {
		return err
	}

	threads := opts.Threads
	if threads == 0 {
		threads = cfg.Threads
	}
	minIdentity := opts.MinIdentity
	if minIdentity < 0 {
		minIdentity = cfg.MinIdentity
	}

	popts := pipeline.Options{
		Genome:    resolved.Genome,
		Type:      resolved.Type,
		Algorithm: resolved.Algorithm,
		Params: align.Params{
			Match:    cfg.Align.Match,
			Mismatch: cfg.Align.Mismatch,
			Gap:      cfg.Align.Gap,
			Anchor:   cfg.Align.AnchorLength,
		},
		Threads: threads,
	}

	start := time.Now()
	outcomes, err := pipeline.Locate(ctx, queries, popts)
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	located := 0
	for i, o := range outcomes {
		switch {
		case o.Err != nil:
			cmdutil.Warnf(stderr, opts.Quiet, "query %d: %v", i+1, o.Err)
		case o.Locator.Similarity < minIdentity:
			located++
			cmdutil.Warnf(stderr, opts.Quiet, "query %d: best placement has only %d%% identity",
				i+1, o.Locator.Similarity)
		default:
			located++
		}
	}

	outw := bufio.NewWriter(cmd.OutOrStdout())
	switch resolved.Output {
	case cli.OutputJSON:
		err = output.WriteJSON(outw, queries, outcomes)
	default:
		var render func(locator.Locator) string
		if opts.Pretty {
			genome := resolved.Genome.String()
			render = func(l locator.Locator) string { return pretty.Render(l, genome) }
		}
		err = output.WriteTextWithRenderer(outw, outcomes, !opts.NoHeader, render)
	}
	if err == nil {
		err = outw.Flush()
	}
	if err != nil {
		return err
	}

	cmdutil.Infof(stderr, opts.Verbose, "located %d/%d queries against %s (%s nt) in %s",
		located, len(outcomes), resolved.Genome,
		humanize.Comma(int64(len(resolved.Genome.Sequence()))),
		time.Since(start).Round(time.Millisecond))

	if located == 0 {
		return errors.New("locator not found for any query")
	}
	return nil
}

// expandQueries replaces a "-" entry with one query per non-empty stdin line,
// preserving overall order.
func expandQueries(args []string, stdin io.Reader) ([]string, error) {
	out := make([]string, 0, len(args))
	for _, a := range args {
		if a != "-" {
			out = append(out, a)
			continue
		}
		sc := bufio.NewScanner(stdin)
		sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
		for sc.Scan() {
			if line := strings.TrimSpace(sc.Text()); line != "" {
				out = append(out, line)
			}
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("read queries from stdin: %w", err)
		}
	}
	return out, nil
}

// isFlagError spots cobra/pflag parse failures, which carry no sentinel.
func isFlagError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "flag") || strings.Contains(msg, "required")
}
