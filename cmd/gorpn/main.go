package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/nouka/gorpn"
	"github.com/rs/zerolog"
)

func repl(logger zerolog.Logger, verbose bool) {
	calc := gorpn.New(verbose, gorpn.WithLogger(logger))
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		ret, err := calc.Eval(scanner.Text())
		if err != nil {
			logger.Error().Msg(err.Error())
			continue
		}
		fmt.Println(ret)
	}
}

func run(path string, logger zerolog.Logger, verbose bool) error {
	f := os.Stdin
	if path != "" {
		var err error
		f, err = os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
	}
	return gorpn.NewDriver(os.Stdout, logger, verbose).Run(f)
}

func main() {
	var verbose bool
	flag.BoolVar(&verbose, "v", false, "print evaluator state after each token")
	flag.BoolVar(&verbose, "verbose", false, "print evaluator state after each token")
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)

	if flag.NArg() == 0 && isatty.IsTerminal(os.Stdin.Fd()) {
		repl(logger, verbose)
		return
	}

	if err := run(flag.Arg(0), logger, verbose); err != nil {
		logger.Fatal().Err(err).Msg("gorpn failed")
	}
}
