package cli

import (
	"log"

	"github.com/nanoteck137/thumbgen/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfg    *config.Config
	logger = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:          "thumbgen",
	Version:      "0.1.0",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var envFiles []string
		if cmd.Flags().Changed("env-file") {
			envFile, _ := cmd.Flags().GetString("env-file")
			envFiles = append(envFiles, envFile)
		}

		var err error
		cfg, err = config.Load(envFiles...)
		if err != nil {
			return err
		}

		levelName := cfg.LogLevel
		if cmd.Flags().Changed("log-level") {
			levelName, _ = cmd.Flags().GetString("log-level")
		}

		level, err := zerolog.ParseLevel(levelName)
		if err != nil {
			return err
		}

		logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
			Level(level).
			With().
			Timestamp().
			Logger()

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("env-file", config.DefaultEnvFile, "Load defaults from this env file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
