// Copyright (c) 2016-2019, Andreas T Jonsson
// All rights reserved.

package bench

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gudals2040/250911-first-repo/cmd/fibo/config"
	"github.com/gudals2040/250911-first-repo/cmd/fibo/logging"
	"github.com/gudals2040/250911-first-repo/cmd/fibo/report"
	"github.com/gudals2040/250911-first-repo/fib"
)

func Bench() int {
	setupFlags()
	logging.Setup(verbose, silent)

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return -1
	}

	if err := run(os.Stdout, cfg.Bench, cfg.NaiveLimit); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return -1
	}
	return 0
}

func run(w io.Writer, b config.Bench, limit int) error {
	for n := b.From; n <= b.To; n += b.Step {
		if n <= limit {
			if err := runTest(w, "naive", n, fib.Naive, fib.NaiveStats); err != nil {
				return err
			}
		} else {
			logging.Logln("skipping naive for", n)
		}
		if err := runTest(w, "memo", n, fib.Memo, fib.MemoStats); err != nil {
			return err
		}
	}
	return nil
}

func runTest(w io.Writer, name string, n int, f fib.Func, stats func(int) (int32, fib.Stats, error)) error {
	v, d, err := report.Timed(f, n)
	if err != nil {
		return err
	}

	// Counting is done in a separate pass so it does not skew the timing.
	var s fib.Stats
	if counted {
		if _, s, err = stats(n); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "[%s] F(%d) = %d: %v", name, n, v, d.Round(time.Millisecond))
	if counted {
		fmt.Fprintf(w, " (%v)", s)
	}
	fmt.Fprintln(w)
	return nil
}

func About() string {
	return "time naive and memoized recursion over a range of indices"
}

var (
	configPath string

	from,
	to,
	step,
	naiveLimit int

	counted,
	silent,
	verbose bool
)

func setupFlags() {
	def := config.Default()

	flag.StringVar(&configPath, "config", "", "YAML settings file")
	flag.IntVar(&from, "from", def.Bench.From, "first index")
	flag.IntVar(&to, "to", def.Bench.To, "last index")
	flag.IntVar(&step, "step", def.Bench.Step, "index increment")
	flag.IntVar(&naiveLimit, "limit", def.NaiveLimit, "largest index computed with naive recursion")
	flag.BoolVar(&counted, "calls", counted, "also report call and addition counts")
	flag.BoolVar(&silent, "s", silent, "silent mode")
	flag.BoolVar(&verbose, "v", verbose, "verbose")
	flag.Parse()
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "from":
			cfg.Bench.From = from
		case "to":
			cfg.Bench.To = to
		case "step":
			cfg.Bench.Step = step
		case "limit":
			cfg.NaiveLimit = naiveLimit
		}
	})
	return cfg, cfg.Validate()
}

func PrintDefaults() {
	setupFlags()
	fmt.Println("fibo bench [flags]")
	flag.PrintDefaults()
}
