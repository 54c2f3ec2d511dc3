// Copyright (c) 2016-2019, Andreas T Jonsson
// All rights reserved.

package interactive

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/gudals2040/250911-first-repo/cmd/fibo/config"
	"github.com/gudals2040/250911-first-repo/cmd/fibo/logging"
	"github.com/gudals2040/250911-first-repo/cmd/fibo/report"
	"github.com/gudals2040/250911-first-repo/fib"
)

var errNegativeBound = errors.New("negative sequence bound")

func Interactive() int {
	setupFlags()
	logging.Setup(verbose, silent)

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return -1
	}

	if err := run(os.Stdin, os.Stdout, cfg.NaiveLimit); err != nil {
		if !errors.Is(err, errNegativeBound) {
			fmt.Fprintln(os.Stderr, err)
		}
		return -1
	}
	return 0
}

// run reads the sequence bound and then the lookup index from in. If in is
// an io.Closer it is closed once both numbers have been read.
func run(in io.Reader, out io.Writer, limit int) error {
	r := bufio.NewReader(in)

	fmt.Fprint(out, "Enter the last index of the sequence: ")
	var n int
	if _, err := fmt.Fscan(r, &n); err != nil {
		return fmt.Errorf("reading sequence bound: %w", err)
	}
	logrus.WithField("bound", n).Debug("read bound")

	if n < 0 {
		fmt.Fprintf(out, "\nInvalid bound %d: the bound must be 0 or greater.\n", n)
		return errNegativeBound
	}

	fmt.Fprintln(out)
	if n <= limit {
		if err := report.Sequence(out, "Naive recursion", n, fib.Naive); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(out, "Naive recursion skipped: bound %d is above %d.\n\n", n, limit)
	}
	if err := report.Sequence(out, "Memoized recursion", n, fib.Memo); err != nil {
		return err
	}

	fmt.Fprint(out, "Enter an index to look up: ")
	var index int
	if _, err := fmt.Fscan(r, &index); err != nil {
		return fmt.Errorf("reading index: %w", err)
	}
	logrus.WithField("index", index).Debug("read index")

	if c, ok := in.(io.Closer); ok {
		if err := c.Close(); err != nil {
			logrus.WithError(err).Warn("closing input")
		}
	}

	fmt.Fprintln(out)
	if err := report.Compare(out, index, limit); err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Done.")
	return nil
}

func About() string {
	return "read a bound and an index from standard input"
}

var (
	configPath string
	naiveLimit int

	silent,
	verbose bool
)

func setupFlags() {
	flag.StringVar(&configPath, "config", "", "YAML settings file")
	flag.IntVar(&naiveLimit, "limit", config.Default().NaiveLimit, "largest index computed with naive recursion")
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
		if f.Name == "limit" {
			cfg.NaiveLimit = naiveLimit
		}
	})
	return cfg, cfg.Validate()
}

func PrintDefaults() {
	setupFlags()
	fmt.Println("fibo interactive [flags] < input")
	flag.PrintDefaults()
}
