package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Gbotemi-ojo/orthoplus-be/internal/seedr/config"
	"github.com/Gbotemi-ojo/orthoplus-be/internal/seedr/logger"
)

var (
	cfgFile string
	Version = "v0.1"
	rootCmd = &cobra.Command{
		Use:   "seedr",
		Short: "seedr - one-shot patient table seeding for orthoplus",
		Long:  "seedr: seed the orthoplus patients table from a fixed candidate list, skipping records already present by phone number or email.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// load config
			v := viper.GetViper()
			if cfgFile != "" {
				v.SetConfigFile(cfgFile)
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("read config: %w", err)
				}
			} else {
				// default: ./config.yaml, optional
				v.SetConfigFile("config.yaml")
				if err := v.ReadInConfig(); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: could not read config (%v). Using defaults and environment.\n", err)
				}
			}
			if err := config.Load(v); err != nil {
				return err
			}

			// init logger
			cfg := config.Get()
			if err := logger.InitLogger(cfg.Logging.Level); err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			return nil
		},
	}
)

func init() {
	cobra.OnInitialize()
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	// add subcommands
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(versionCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
