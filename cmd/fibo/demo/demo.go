// Copyright (c) 2016-2019, Andreas T Jonsson
// All rights reserved.

package demo

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gudals2040/250911-first-repo/cmd/fibo/config"
	"github.com/gudals2040/250911-first-repo/cmd/fibo/logging"
	"github.com/gudals2040/250911-first-repo/cmd/fibo/report"
	"github.com/gudals2040/250911-first-repo/fib"
)

func Demo() int {
	setupFlags()
	logging.Setup(verbose, silent)

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return -1
	}

	if err := run(os.Stdout, cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return -1
	}
	return 0
}

func run(w io.Writer, cfg config.Config) error {
	logging.Logvln("bound:", cfg.Bound, "index:", cfg.Index, "large:", cfg.LargeN)

	fmt.Fprintln(w, "=== Fibonacci sequence (recursion) ===")
	fmt.Fprintln(w)

	if err := report.Sequence(w, "1. Naive recursion", cfg.Bound, fib.Naive); err != nil {
		return err
	}
	if err := report.Sequence(w, "2. Memoized recursion", cfg.Bound, fib.Memo); err != nil {
		return err
	}

	fmt.Fprintln(w, "3. Single index:")
	if err := report.Lookup(w, cfg.Index, cfg.NaiveLimit); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Performance comparison ===")
	return report.Compare(w, cfg.LargeN, cfg.NaiveLimit)
}

func About() string {
	return "print sequences, a lookup and a timing comparison for fixed inputs"
}

var (
	configPath string

	bound,
	index,
	largeN,
	naiveLimit int

	silent,
	verbose bool
)

func setupFlags() {
	def := config.Default()

	flag.StringVar(&configPath, "config", "", "YAML settings file")
	flag.IntVar(&bound, "n", def.Bound, "last index of the printed sequence")
	flag.IntVar(&index, "index", def.Index, "index of the single lookup")
	flag.IntVar(&largeN, "large", def.LargeN, "index used for the timing comparison")
	flag.IntVar(&naiveLimit, "limit", def.NaiveLimit, "largest index computed with naive recursion")
	flag.BoolVar(&silent, "s", silent, "silent mode")
	flag.BoolVar(&verbose, "v", verbose, "verbose")
	flag.Parse()
}

// loadConfig applies explicitly set flags on top of the settings file.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n":
			cfg.Bound = bound
		case "index":
			cfg.Index = index
		case "large":
			cfg.LargeN = largeN
		case "limit":
			cfg.NaiveLimit = naiveLimit
		}
	})
	return cfg, cfg.Validate()
}

func PrintDefaults() {
	setupFlags()
	fmt.Println("fibo demo [flags]")
	flag.PrintDefaults()
}
