package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"github.com/NagaPranavN/evolol/internal/infrastructure/brainfile"
)

func main() {
	var outPath, examplePath string
	flag.StringVar(&outPath, "out", "", "path to write the JSON schema")
	flag.StringVar(&examplePath, "example", "", "optional path to write the built-in brain as an example file")
	flag.Parse()

	if outPath == "" {
		fmt.Fprintln(os.Stderr, "--out is required")
		os.Exit(1)
	}

	if err := writeSchema(outPath, brainfile.Schema()); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write schema: %v\n", err)
		os.Exit(1)
	}

	if examplePath != "" {
		if err := writeExample(examplePath); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write example: %v\n", err)
			os.Exit(1)
		}
	}
}

func writeSchema(outPath string, schema *jsonschema.Schema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	return writeAtomic(outPath, append(data, '\n'))
}

func writeExample(outPath string) error {
	data, err := brainfile.Marshal(brainfile.DefaultBrain())
	if err != nil {
		return fmt.Errorf("marshal brain: %w", err)
	}
	return writeAtomic(outPath, append(data, '\n'))
}

func writeAtomic(outPath string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("replace file: %w", err)
	}

	return nil
}
