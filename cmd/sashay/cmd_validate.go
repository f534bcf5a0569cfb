package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sadopc/sashay/internal/config"
	"github.com/sadopc/sashay/internal/log"
)

func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sashay validate <file.yaml> [files...]\n\n")
		fmt.Fprintf(os.Stderr, "Validate layout files, or config files with a layout: key.\n\n")
		fmt.Fprintf(os.Stderr, "Examples:\n")
		fmt.Fprintf(os.Stderr, "  sashay validate layout.yaml\n")
		fmt.Fprintf(os.Stderr, "  sashay validate ~/.config/sashay/config.yaml\n")
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: at least one file path is required\n\n")
		fs.Usage()
		os.Exit(1)
	}

	hasErrors := false
	for _, path := range fs.Args() {
		if err := validateFile(path); err != nil {
			log.UserError(fmt.Sprintf("FAIL %s: %v", path, err))
			hasErrors = true
		} else {
			log.UserSuccess("OK   " + path)
		}
	}

	if hasErrors {
		os.Exit(1)
	}
}

// validateFile accepts either a config file (with a top-level layout key) or
// a bare layout tree.
func validateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return fmt.Errorf("file is empty")
	}

	var probe map[string]any
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("parsing YAML: %w", err)
	}
	if _, ok := probe["layout"]; ok {
		_, err := config.LoadFile(path)
		return err
	}
	_, err = config.LoadLayout(path)
	return err
}
