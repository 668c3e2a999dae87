package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Gbotemi-ojo/orthoplus-be/internal/seedr/patient"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Emit synthetic candidate records as YAML",
	Long:  "Generate a deterministic synthetic candidate list, suitable for `seedr seed --file`.",
	RunE:  runGenerate,
}

var (
	flagCount  int
	flagSeed   uint64
	flagOutput string
)

func init() {
	generateCmd.Flags().IntVar(&flagCount, "count", 10, "number of candidates to generate")
	generateCmd.Flags().Uint64Var(&flagSeed, "seed", 1, "random seed (same seed, same output)")
	generateCmd.Flags().StringVar(&flagOutput, "output", "", "output file (default stdout)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cands := patient.Generate(flagCount, flagSeed)

	data, err := yaml.Marshal(cands)
	if err != nil {
		return fmt.Errorf("encode candidates: %w", err)
	}

	if flagOutput == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(flagOutput, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Printf("Wrote %d candidates to %s\n", len(cands), flagOutput)
	return nil
}
