package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"

	"go.uber.org/zap"

	orsf "github.com/openracing/orsf"
)

func runFlatten(args []string) error {
	flags := flag.NewFlagSet("flatten", flag.ContinueOnError)
	flags.SetOutput(os.Stdout)
	flags.Usage = func() {
		zap.S().Info("Usage: orsf-tools flatten <file>")
		zap.S().Info("")
		zap.S().Info("Options:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if flags.NArg() != 1 {
		return fmt.Errorf("exactly one input file expected")
	}

	raw, err := os.ReadFile(flags.Arg(0))
	if err != nil {
		return err
	}
	doc, err := orsf.Decode(raw)
	if err != nil {
		return err
	}

	flat := orsf.Flatten(doc)
	paths := make([]string, 0, len(flat))
	for p := range flat {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, p := range paths {
		fmt.Printf("%s = %s\n", p, strconv.FormatFloat(flat[p], 'g', -1, 64))
	}
	return nil
}
