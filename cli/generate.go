package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/nanoteck137/thumbgen/metadata"
	"github.com/nanoteck137/thumbgen/thumbnail"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate <SRC> <DEST_DIR>",
	Short: "Write a center-cropped thumbnail of SRC into DEST_DIR",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}

		dest, err := filepath.Abs(args[1])
		if err != nil {
			return err
		}

		width, _ := cmd.Flags().GetInt("width")
		height, _ := cmd.Flags().GetInt("height")
		useSlug, _ := cmd.Flags().GetBool("slug")
		printJSON, _ := cmd.Flags().GetBool("json")

		mode := flagOrDefault(cmd, "mode", cfg.Mode)

		target, err := thumbnail.ParseChmodTarget(flagOrDefault(cmd, "chmod-target", cfg.ChmodTarget))
		if err != nil {
			return err
		}

		filter, err := thumbnail.ParseFilter(flagOrDefault(cmd, "filter", cfg.Filter))
		if err != nil {
			return err
		}

		quality := cfg.JPEGQuality
		if cmd.Flags().Changed("quality") {
			quality, _ = cmd.Flags().GetInt("quality")
			if quality < 1 || quality > 100 {
				return fmt.Errorf("quality %d out of range 1-100", quality)
			}
		}

		opts := []thumbnail.Option{
			thumbnail.WithChmodTarget(target),
			thumbnail.WithInterpolator(filter),
			thumbnail.WithJPEGQuality(quality),
			thumbnail.WithLogger(logger),
		}
		if useSlug {
			opts = append(opts, thumbnail.WithNamer(thumbnail.SlugNamer))
		}

		g, err := thumbnail.New(src, opts...)
		if err != nil {
			return err
		}
		defer g.Close()

		res, err := g.Generate(thumbnail.Request{
			Dir:    dest,
			Width:  width,
			Height: height,
			Mode:   mode,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		if printJSON {
			info := metadata.NewThumbnailInfo(metadata.NewSourceInfo(g), res)

			e := json.NewEncoder(out)
			e.SetIndent("", "  ")
			return e.Encode(info)
		}

		fmt.Fprintf(out, "%s: %dx%d %s\n", res.Path, res.Width, res.Height, res.Format)

		return nil
	},
}

func flagOrDefault(cmd *cobra.Command, name, def string) string {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetString(name)
		return v
	}
	return def
}

func init() {
	generateCmd.Flags().IntP("width", "W", 0, "Thumbnail width")
	generateCmd.Flags().IntP("height", "H", 0, "Thumbnail height")
	generateCmd.Flags().String("mode", "", "Octal permission mode (default from config, 0644)")
	generateCmd.Flags().String("chmod-target", "", "Apply mode to 'dir' or 'file'")
	generateCmd.Flags().String("filter", "", "Resampling filter (bilinear, catmullrom, approx-bilinear, nearest)")
	generateCmd.Flags().Int("quality", 0, "JPEG quality 1-100")
	generateCmd.Flags().Bool("slug", false, "Slugify the output file name")
	generateCmd.Flags().Bool("json", false, "Print the result as JSON")

	generateCmd.MarkFlagRequired("width")
	generateCmd.MarkFlagRequired("height")

	rootCmd.AddCommand(generateCmd)
}
