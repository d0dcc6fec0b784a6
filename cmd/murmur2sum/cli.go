package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.dw1.io/murmurhash/hash/murmur2"
	"go.dw1.io/murmurhash/internal/input"
	"go.dw1.io/murmurhash/internal/jsonenc"
	"go.dw1.io/murmurhash/internal/match"
	"go.dw1.io/murmurhash/internal/seed"
)

// errFailed reports that some input could not be hashed or verified. The
// details have already been logged or printed.
var errFailed = errors.New("one or more inputs failed")

type cli struct {
	Algo      string   `short:"a" default:"2a" enum:"2,2a,neutral2,aligned2,64a,64b,neutral64a" env:"MURMUR2SUM_ALGO" help:"Hash variant (${enum})."`
	Seed      string   `short:"s" default:"0" env:"MURMUR2SUM_SEED" help:"Seed, decimal or 0x-prefixed hex; must fit the variant width."`
	Recursive bool     `short:"r" help:"Descend into directories."`
	Match     []string `short:"m" sep:"none" placeholder:"REGEX" help:"Only hash paths matching REGEX (repeatable)."`
	Exclude   []string `short:"x" sep:"none" placeholder:"REGEX" help:"Skip paths matching REGEX (repeatable)."`
	Jobs      int      `short:"j" default:"${jobs}" env:"MURMUR2SUM_JOBS" help:"Number of inputs hashed concurrently."`
	Format    string   `short:"o" default:"text" enum:"text,json" env:"MURMUR2SUM_FORMAT" help:"Output format (${enum})."`
	Check     bool     `short:"c" help:"Read digest lists from the arguments and verify them."`
	Quiet     bool     `short:"q" help:"With --check, only print failures."`
	LogLevel  string   `default:"warning" enum:"debug,info,notice,warning,error,critical" env:"MURMUR2SUM_LOG_LEVEL" help:"Log level (${enum})."`
	Paths     []string `arg:"" optional:"" name:"path" help:"Files or directories; '-' or nothing reads standard input."`
}

// options is the validated form of cli.
type options struct {
	variant murmur2.Variant
	seed    uint64
	jobs    int
	json    bool
	quiet   bool
	filter  *match.Set
}

func (c *cli) options() (options, error) {
	v, err := murmur2.ParseVariant(c.Algo)
	if err != nil {
		return options{}, err
	}

	s, err := seed.ParseBits(c.Seed, v.Size()*8)
	if err != nil {
		return options{}, fmt.Errorf("--seed for %s: %w", v, err)
	}

	filter, err := match.NewSet(c.Match, c.Exclude)
	if err != nil {
		return options{}, err
	}

	jobs := c.Jobs
	if jobs < 1 {
		jobs = 1
	}

	return options{
		variant: v,
		seed:    s,
		jobs:    jobs,
		json:    c.Format == "json",
		quiet:   c.Quiet,
		filter:  filter,
	}, nil
}

func (c *cli) run(ctx context.Context, stdin io.Reader, stdout io.Writer) error {
	opts, err := c.options()
	if err != nil {
		return err
	}

	log.Debugf("variant %s, seed %#x, %d jobs", opts.variant, opts.seed, opts.jobs)

	h := &hasher{variant: opts.variant, seed: opts.seed, stdin: stdin}

	if c.Check {
		return check(ctx, h, c.Paths, opts, stdout)
	}

	var keep input.Filter
	if !opts.filter.Empty() {
		keep = opts.filter.Keep
	}

	paths, err := input.Expand(c.Paths, c.Recursive, keep)
	if err != nil {
		return err
	}

	results, err := h.hashAll(ctx, paths, opts.jobs)
	if err != nil {
		return err
	}

	return emit(stdout, results, opts)
}

// emit prints results in input order and reports errFailed if any input
// could not be hashed.
func emit(w io.Writer, results []result, opts options) error {
	var enc *jsonenc.Writer
	if opts.json {
		enc = jsonenc.NewWriter(w)
	}

	failed := 0
	for _, r := range results {
		if r.err != nil {
			log.Errorf("%s: %v", r.path, r.err)
			failed++
			continue
		}

		digest := formatDigest(opts.variant, r.digest)
		if enc != nil {
			err := enc.Write(jsonenc.Record{
				Path:   r.path,
				Algo:   opts.variant.String(),
				Seed:   opts.seed,
				Digest: digest,
				Size:   r.size,
			})
			if err != nil {
				return err
			}
			continue
		}

		if _, err := fmt.Fprintf(w, "%s  %s\n", digest, r.path); err != nil {
			return err
		}
	}

	if failed > 0 {
		return errFailed
	}

	return nil
}

func formatDigest(v murmur2.Variant, digest uint64) string {
	return fmt.Sprintf("%0*x", v.Size()*2, digest)
}
