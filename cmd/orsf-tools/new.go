package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	orsf "github.com/openracing/orsf"
)

func runNew(args []string) error {
	flags := flag.NewFlagSet("new", flag.ContinueOnError)
	flags.SetOutput(os.Stdout)
	flags.Usage = func() {
		zap.S().Info("Usage: orsf-tools new [options]")
		zap.S().Info("")
		zap.S().Info("Options:")
		flags.PrintDefaults()
	}

	name := flags.String("name", "New setup", "Setup name")
	carMake := flags.String("make", "", "Car make (required)")
	carModel := flags.String("model", "", "Car model (required)")
	outputFile := flags.String("out", "", "Output file (defaults to stdout)")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if *carMake == "" || *carModel == "" {
		return fmt.Errorf("both -make and -model must be provided")
	}

	doc := orsf.NewDocument(*name, *carMake, *carModel)
	raw, err := orsf.EncodeIndent(doc)
	if err != nil {
		return err
	}
	raw = append(raw, '\n')

	if *outputFile == "" {
		_, err = os.Stdout.Write(raw)
		return err
	}
	if err := os.WriteFile(*outputFile, raw, 0o644); err != nil {
		return err
	}
	zap.S().Infow("wrote setup document", "path", *outputFile, "id", doc.Metadata.ID)
	return nil
}
