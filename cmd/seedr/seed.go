package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Gbotemi-ojo/orthoplus-be/internal/seedr/config"
	"github.com/Gbotemi-ojo/orthoplus-be/internal/seedr/logger"
	"github.com/Gbotemi-ojo/orthoplus-be/internal/seedr/patient"
	"github.com/Gbotemi-ojo/orthoplus-be/internal/seedr/seeder"
	"github.com/Gbotemi-ojo/orthoplus-be/internal/seedr/store"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert candidate patients not already present in the store",
	RunE:  runSeed,
}

var (
	flagFile   string
	flagDryRun bool
)

func init() {
	seedCmd.Flags().StringVar(&flagFile, "file", "", "YAML candidate file (default: built-in list)")
	seedCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "check duplicates but insert nothing")
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	if err := cfg.Validate(); err != nil {
		return err
	}
	log := logger.L()

	candidates := patient.Defaults()
	if flagFile != "" {
		var err error
		candidates, err = patient.LoadFile(flagFile)
		if err != nil {
			return err
		}
	}
	log.Infow("seeding patients",
		"candidates", len(candidates),
		"driver", cfg.Driver,
		"database", cfg.Database,
		"dry_run", flagDryRun,
	)

	st, err := store.Open(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	// Seed closes the pool on every path.
	rep, err := seeder.Seed(cmd.Context(), st, candidates, flagDryRun)
	if err != nil {
		log.Errorw("seeding aborted", "error", err)
		return err
	}

	fmt.Printf("Seeding complete: %d added, %d skipped (%d candidates)\n",
		rep.Added, rep.Skipped, rep.Added+rep.Skipped)
	return nil
}
