package cli

import (
	"path/filepath"

	"github.com/kr/pretty"
	"github.com/nanoteck137/thumbgen/metadata"
	"github.com/nanoteck137/thumbgen/thumbnail"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <SRC>",
	Short: "Validate and decode SRC and print what was detected",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}

		g, err := thumbnail.New(src, thumbnail.WithLogger(logger))
		if err != nil {
			return err
		}
		defer g.Close()

		_, err = pretty.Fprintf(cmd.OutOrStdout(), "%# v\n", metadata.NewSourceInfo(g))
		return err
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
