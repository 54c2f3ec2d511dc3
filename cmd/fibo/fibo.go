// Copyright (c) 2016-2019, Andreas T Jonsson
// All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/gudals2040/250911-first-repo/cmd/fibo/bench"
	"github.com/gudals2040/250911-first-repo/cmd/fibo/demo"
	"github.com/gudals2040/250911-first-repo/cmd/fibo/interactive"
	"github.com/gudals2040/250911-first-repo/cmd/fibo/plot"
	"github.com/gudals2040/250911-first-repo/cmd/fibo/version"
)

func main() {
	if len(os.Args) < 2 {
		printHeader()
		fmt.Fprintln(os.Stderr, "Tools:")
		printTools()
		os.Exit(-1)
	}

	i := 1
	sz := 1
	tool := os.Args[1]
	for _, a := range os.Args[2:] {
		if a != "-h" {
			os.Args[i] = a
			sz++
			i++
		}
	}
	os.Args = os.Args[:sz]

	switch tool {
	case "demo":
		os.Exit(demo.Demo())
	case "interactive":
		os.Exit(interactive.Interactive())
	case "bench":
		os.Exit(bench.Bench())
	case "plot":
		os.Exit(plot.Plot())
	case "version":
		fmt.Println("fibo version:", version.Version)
	case "help", "-help", "-h":
		if len(os.Args) == 2 {
			printToolHelp(os.Args[1])
			return
		}
		printHeader()
		printTools()
	default:
		fmt.Fprintln(os.Stderr, "Invalid tool:", tool)
		printTools()
		os.Exit(-1)
	}
}

func printHeader() {
	fmt.Print("fibo - naive and memoized Fibonacci\n\n")
	fmt.Print("You can run 'fibo help [tool]' for more information of a specific tool.\n\n")
}

func printToolHelp(tool string) {
	switch tool {
	case "demo":
		demo.PrintDefaults()
	case "interactive":
		interactive.PrintDefaults()
	case "bench":
		bench.PrintDefaults()
	case "plot":
		plot.PrintDefaults()
	default:
		fmt.Println(tool, "has no options")
	}
}

func printTools() {
	fmt.Println("\tbench\t" + bench.About())
	fmt.Println("\tdemo\t" + demo.About())
	fmt.Println("\thelp\tlist tools and options")
	fmt.Println("\tinteractive\t" + interactive.About())
	fmt.Println("\tplot\t" + plot.About())
	fmt.Println("\tversion\t" + version.About())
}
