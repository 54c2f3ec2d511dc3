// Copyright (c) 2016-2019, Andreas T Jonsson
// All rights reserved.

package plot

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"github.com/nfnt/resize"

	"github.com/gudals2040/250911-first-repo/cmd/fibo/config"
	"github.com/gudals2040/250911-first-repo/cmd/fibo/logging"
	"github.com/gudals2040/250911-first-repo/fib"
)

const (
	barWidth    = 8
	chartHeight = 256
)

var (
	background = color.RGBA{0xff, 0xff, 0xff, 0xff}
	barColor   = color.RGBA{0x29, 0x7b, 0xb8, 0xff}
)

func Plot() int {
	setupFlags()
	logging.Setup(verbose, silent)

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return -1
	}

	if err := run(os.Stdout, cfg.Plot); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return -1
	}
	return 0
}

// run draws F(0) through F(p.Bound) as a bar chart and writes it as PNG,
// scaled to p.Width x p.Height.
func run(w io.Writer, p config.Plot) error {
	seq, err := fib.Sequence(p.Bound, fib.Memo)
	if err != nil {
		return err
	}

	src := render(seq)
	logging.Logvln("scaling", src.Bounds().Size(), "to", p.Width, "x", p.Height)

	res := resize.Resize(p.Width, p.Height, src, resize.Lanczos3)
	return png.Encode(w, res)
}

func render(seq []int32) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, len(seq)*barWidth, chartHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	var max int32 = 1
	for _, v := range seq {
		if v > max {
			max = v
		}
	}

	for i, v := range seq {
		h := int(int64(v) * chartHeight / int64(max))
		r := image.Rect(i*barWidth+1, chartHeight-h, (i+1)*barWidth-1, chartHeight)
		draw.Draw(img, r, image.NewUniform(barColor), image.Point{}, draw.Src)
	}
	return img
}

func About() string {
	return "write the sequence as a PNG bar chart to standard output"
}

var (
	configPath string

	bound int

	width,
	height uint

	silent,
	verbose bool
)

func setupFlags() {
	def := config.Default().Plot

	flag.StringVar(&configPath, "config", "", "YAML settings file")
	flag.IntVar(&bound, "n", def.Bound, "last index to plot")
	flag.UintVar(&width, "x", def.Width, "output image width")
	flag.UintVar(&height, "y", def.Height, "output image height")
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
		case "n":
			cfg.Plot.Bound = bound
		case "x":
			cfg.Plot.Width = width
		case "y":
			cfg.Plot.Height = height
		}
	})
	return cfg, cfg.Validate()
}

func PrintDefaults() {
	setupFlags()
	fmt.Println("fibo plot [flags] > out.png")
	flag.PrintDefaults()
}
