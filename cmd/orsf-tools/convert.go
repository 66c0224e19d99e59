package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	orsf "github.com/openracing/orsf"
	"github.com/openracing/orsf/factory"
)

func runConvert(args []string) error {
	flags := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags.SetOutput(os.Stdout)
	flags.Usage = func() {
		zap.S().Info("Usage: orsf-tools convert [options] <file>")
		zap.S().Info("")
		zap.S().Info("Options:")
		flags.PrintDefaults()
	}

	sim := flags.String("sim", "", "Target simulator id (required; use -list to see them)")
	carKey := flags.String("car", "", "Car key within the simulator, if the adapter needs one")
	fromNative := flags.Bool("from", false, "Convert from the simulator format to canonical JSON instead")
	outputFile := flags.String("out", "", "Output file (defaults to a suggested name, or stdout with -from)")
	list := flags.Bool("list", false, "List available adapters and exit")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	registry := factory.NewRegistry()

	if *list {
		for _, info := range registry.Adapters() {
			fmt.Printf("%-12s v%-8s .%-5s %s\n", info.ID, info.Version, info.FileExtension, info.Description)
		}
		return nil
	}

	if *sim == "" {
		return fmt.Errorf("-sim must be provided")
	}
	if flags.NArg() != 1 {
		return fmt.Errorf("exactly one input file expected")
	}

	adapter, err := registry.Resolve(*sim, *carKey)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(flags.Arg(0))
	if err != nil {
		return err
	}

	if *fromNative {
		doc, err := adapter.FromNative(raw)
		if err != nil {
			return err
		}
		out, err := orsf.EncodeIndent(doc)
		if err != nil {
			return err
		}
		out = append(out, '\n')
		if *outputFile == "" {
			_, err = os.Stdout.Write(out)
			return err
		}
		return os.WriteFile(*outputFile, out, 0o644)
	}

	doc, err := orsf.Decode(raw)
	if err != nil {
		return err
	}
	out, err := adapter.ToNative(doc)
	if err != nil {
		return err
	}

	path := *outputFile
	if path == "" {
		path = orsf.SuggestedFilename(adapter, doc)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return err
	}
	zap.S().Infow("converted setup", "sim", *sim, "path", path)
	return nil
}
