package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/maeasam/shataba/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "shataba",
	Short: "Controlled-vocabulary cleaning for resource model tables",
	Long:  "Reconciles concept columns in tabular exports against the thesaurus collections bound to their resource model, blanks unrecognized values, and reports everything it removed.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := c.Check(); err != nil {
			return fmt.Errorf("check config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
