// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"cogentcore.org/pretty/base/errors"
	"cogentcore.org/pretty/config"
	"cogentcore.org/pretty/logx"
	"cogentcore.org/pretty/pretty"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

// app is the pretty tool: its flags, its configuration
// and the streams it reads and writes.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	configPath string
	format     string
	vv, v, q   bool

	n       int
	coef    []float64
	base    float64
	tol     float64
	auto    bool
	contain string

	cfg *config.Config
}

func newApp(in io.Reader, out io.Writer) *app {
	return &app{in: in, out: out, errOut: os.Stderr}
}

// command returns the root command with all subcommands.
func (a *app) command() *cobra.Command {
	root := &cobra.Command{
		Use:               "pretty",
		Short:             "pretty prints pretty breakpoints for a numeric range",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", config.DefaultPath, "the configuration file")
	pf.StringVar(&a.format, "format", "text", "the output format: text, json or yaml")
	pf.IntVarP(&a.n, "intervals", "n", pretty.DefaultIntervals, "the approximate number of intervals")
	pf.BoolVar(&a.vv, "vv", false, "show debug messages")
	pf.BoolVarP(&a.v, "verbose", "v", false, "show info messages")
	pf.BoolVarP(&a.q, "quiet", "q", false, "only show errors")

	breaks := &cobra.Command{
		Use:   "breaks LO HI",
		Short: "breaks prints breakpoints covering [LO, HI] with the general engine",
		Args:  cobra.ExactArgs(2),
		RunE:  a.breaks,
	}
	a.engineFlags(breaks)

	simple := &cobra.Command{
		Use:   "simple LO UP",
		Short: "simple prints breakpoints covering [LO, UP] using multiples of 1, 2, 5 and 10",
		Args:  cobra.ExactArgs(2),
		RunE:  a.simple,
	}

	extended := &cobra.Command{
		Use:   "extended LO HI",
		Short: "extended prints optimal labels for [LO, HI] with the Talbot, Lin and Hanrahan engine",
		Args:  cobra.ExactArgs(2),
		RunE:  a.extended,
	}
	extended.Flags().StringVar(&a.contain, "contain", "data", "the containment of labels and data: free, data or within")

	samples := &cobra.Command{
		Use:   "samples [FILE]",
		Short: "samples prints breakpoints covering the whitespace separated numbers in FILE or standard input",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.samples,
	}
	a.engineFlags(samples)
	samples.Flags().BoolVar(&a.auto, "auto", false, "derive the number of intervals from the number of samples")

	root.AddCommand(breaks, simple, extended, samples)
	return root
}

// engineFlags adds the flags of the general engine to cmd.
func (a *app) engineFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64SliceVar(&a.coef, "coef", pretty.DefaultCoefficients(), "the rounding coefficients in [1, base)")
	f.Float64Var(&a.base, "base", pretty.DefaultBase, "the radix of the number system")
	f.Float64Var(&a.tol, "tol", pretty.DefaultTol, "the tolerance below which breaks are snapped to zero")
}

// setup sets the log level, opens the configuration file and
// applies the flags that were given explicitly on top of it.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	logx.UserLevel = logx.LevelFromFlags(a.vv, a.v, a.q)
	logx.SetDefaultLogger(a.errOut)

	cfg, err := config.Open(a.configPath)
	if err != nil {
		return err
	}
	f := cmd.Flags()
	if f.Changed("format") {
		cfg.Format = a.format
	}
	if f.Changed("intervals") {
		cfg.N = a.n
	}
	if f.Changed("coef") {
		cfg.Coefficients = a.coef
	}
	if f.Changed("base") {
		cfg.Base = a.base
	}
	if f.Changed("tol") {
		cfg.Tol = a.tol
	}
	if f.Changed("auto") {
		cfg.Auto = a.auto
	}
	if f.Changed("contain") {
		cfg.Containment = a.contain
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	slog.Debug("configured", "config", a.configPath, "settings", fmt.Sprintf("%+v", *cfg))
	return nil
}

func (a *app) breaks(cmd *cobra.Command, args []string) error {
	lo, hi, err := parseBounds(args)
	if err != nil {
		return err
	}
	opts := a.cfg.Options()
	// the interval count can only be derived from samples
	opts.Auto = false
	sc, err := pretty.Search(lo, hi, opts)
	if err != nil {
		return err
	}
	slog.Info("breaks", "lo", lo, "hi", hi, "step", sc.Step, "origin", sc.Origin, "end", sc.End)
	b, err := pretty.Breaks(lo, hi, opts)
	if err != nil {
		return err
	}
	return a.write(b)
}

func (a *app) simple(cmd *cobra.Command, args []string) error {
	lo, up, err := parseBounds(args)
	if err != nil {
		return err
	}
	b, err := pretty.Simple(lo, up, a.cfg.N)
	if err != nil {
		return err
	}
	slog.Info("simple", "lo", lo, "up", up, "breaks", len(b))
	return a.write(b)
}

func (a *app) extended(cmd *cobra.Command, args []string) error {
	lo, hi, err := parseBounds(args)
	if err != nil {
		return err
	}
	eo, err := a.cfg.ExtendedOptions()
	if err != nil {
		return err
	}
	l, err := pretty.Extended(lo, hi, a.cfg.N, eo)
	if err != nil {
		return err
	}
	slog.Info("extended", "lo", lo, "hi", hi, "step", l.Step, "nice", l.Nice, "magnitude", l.Magnitude)
	return a.write(l.Values)
}

func (a *app) samples(cmd *cobra.Command, args []string) error {
	r := a.in
	if len(args) == 1 {
		fp, err := homedir.Expand(args[0])
		if err != nil {
			return err
		}
		f, err := os.Open(fp)
		if err != nil {
			return err
		}
		defer func() { errors.Log(f.Close()) }()
		r = f
	}
	x, err := readSamples(r)
	if err != nil {
		return err
	}
	slog.Info("samples", "count", len(x))
	b, err := pretty.BreaksOf(x, a.cfg.Options())
	if err != nil {
		return err
	}
	return a.write(b)
}

// parseBounds parses the two positional bounds.
func parseBounds(args []string) (lo, hi float64, err error) {
	lo, err = strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid lower bound: %w", err)
	}
	hi, err = strconv.ParseFloat(args[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid upper bound: %w", err)
	}
	return lo, hi, nil
}

// readSamples reads whitespace separated numbers from r.
func readSamples(r io.Reader) ([]float64, error) {
	var x []float64
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", len(x)+1, err)
		}
		x = append(x, v)
	}
	return x, sc.Err()
}
