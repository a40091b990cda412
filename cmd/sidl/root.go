package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/eqforge/sidl/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "sidl [sub-command]",
	Short: "Inspect and validate EverQuest-style UI skin files",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
	DisableAutoGenTag: true,
	SilenceUsage:      true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML options file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(newInspectCmd(), newValidateCmd())
}

func loadOptions() (config.Options, error) {
	opts := config.Default()
	if cfgFile != "" {
		var err error
		if opts, err = config.Load(cfgFile); err != nil {
			return opts, err
		}
	}
	if verbose {
		opts.LogLevel = "debug"
	}
	return opts, nil
}

// Execute runs the root command. It is called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
