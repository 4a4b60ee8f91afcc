package main

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/plotview/internal/chart"
	"github.com/dshills/plotview/internal/chart/export"
	"github.com/dshills/plotview/internal/chartspec"
	"github.com/dshills/plotview/internal/config"
	"github.com/dshills/plotview/internal/config/layer"
)

// readDocument reads a document from path, or stdin when path is "-".
func readDocument(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

// describe formats a document error the way the preview pane shows it,
// prefixed with the line for syntax errors.
func describe(err error) string {
	msg := chartspec.Message(err)
	if line := chartspec.ErrorLine(err); line >= 0 {
		return fmt.Sprintf("line %d: %s", line+1, msg)
	}
	return msg
}

func newCheckCmd(root *rootFlags) *cobra.Command {
	var figure bool
	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Parse and validate a chart document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readDocument(cmd, args[0])
			if err != nil {
				return err
			}
			spec, err := chartspec.Parse(text)
			if err != nil {
				return errors.New(describe(err))
			}
			if !figure {
				fmt.Fprintf(cmd.OutOrStdout(), "ok: %d trace(s)\n", spec.TraceCount())
				return nil
			}

			cfg, err := config.Load(config.Options{Path: root.ConfigPath})
			if err != nil {
				return err
			}
			fig, err := chart.NewFigure(spec, cfg.Preview.DefaultWidth, cfg.Preview.DefaultHeight)
			if err != nil {
				return err
			}
			doc, err := fig.JSON()
			if err != nil {
				return err
			}
			out, err := chartspec.Prettify(doc)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().BoolVar(&figure, "figure", false, "Print the document as handed to the renderer, with size and config applied")
	return cmd
}

func newPrettifyCmd() *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "prettify FILE",
		Short: "Print a chart document in canonical indented form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readDocument(cmd, args[0])
			if err != nil {
				return err
			}
			out, err := chartspec.Prettify(text)
			if err != nil {
				return fmt.Errorf("%s: %s", chartspec.PrettifyFailedMessage, describe(err))
			}
			if write && args[0] != "-" {
				return os.WriteFile(args[0], []byte(out), 0o644)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "Rewrite the file in place")
	return cmd
}

func newExportCmd(root *rootFlags) *cobra.Command {
	var (
		output string
		format string
		width  int
		height int
	)
	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Render a chart document to a PNG or SVG image",
		Example: `  plotview export chart.json -o chart.png
  plotview export chart.json -o chart.svg --width 1200 --height 800`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.Options{Path: root.ConfigPath})
			if err != nil {
				return err
			}
			if width <= 0 {
				width = cfg.Preview.DefaultWidth
			}
			if height <= 0 {
				height = cfg.Preview.DefaultHeight
			}
			if format == "" {
				format = formatFromPath(output, cfg.Export.Format)
			}
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			text, err := readDocument(cmd, args[0])
			if err != nil {
				return err
			}
			spec, err := chartspec.Parse(text)
			if err != nil {
				return errors.New(describe(err))
			}
			fig, err := chart.NewFigure(spec, max(width, cfg.Preview.MinDimension), max(height, cfg.Preview.MinDimension))
			if err != nil {
				return err
			}
			m := chart.Interpret(fig)

			if output == "" || output == "-" {
				return export.Render(m, f, cmd.OutOrStdout())
			}
			if err := export.WriteFile(m, f, output); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%dx%d %s)\n", output, m.Width, m.Height, f)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (stdout when empty)")
	cmd.Flags().StringVar(&format, "format", "", "Image format: png or svg (default from the output name)")
	cmd.Flags().IntVar(&width, "width", 0, "Image width in pixels")
	cmd.Flags().IntVar(&height, "height", 0, "Image height in pixels")
	return cmd
}

// formatFromPath picks the format from the output extension, else def.
func formatFromPath(path, def string) string {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if _, err := export.ParseFormat(ext); err == nil {
		return ext
	}
	return def
}

func newConfigCmd(root *rootFlags) *cobra.Command {
	var origins bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.Options{Path: root.ConfigPath})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, p := range cfg.Problems {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", p)
			}
			if origins {
				flat := layer.FlattenMap(cfg.Values())
				for _, k := range slices.Sorted(maps.Keys(flat)) {
					fmt.Fprintf(out, "%-28s %-12s %v\n", k, cfg.Origin(k), flat[k])
				}
				return nil
			}
			if cfg.Path != "" {
				fmt.Fprintf(out, "# %s\n", cfg.Path)
			}
			data, err := cfg.MarshalTOML()
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		},
	}
	cmd.Flags().BoolVar(&origins, "origins", false, "List every key with the layer that set it")
	return cmd
}
