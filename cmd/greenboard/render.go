package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/greenboard-org/greenboard/charts"
	"github.com/greenboard-org/greenboard/views"
)

func newRenderCmd(flags *rootFlags) *cobra.Command {
	var outDir string
	var viewName string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render view charts as PNG files",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(cmd.Context(), flags)
			if err != nil {
				return err
			}

			targets := views.All
			if viewName != "" {
				targets = []views.View{views.View(viewName)}
			}

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}

			renderer := charts.NewRenderer()
			rendered := 0
			for _, view := range targets {
				vm := views.Render(view, sess.records, sess.viewOptions())
				if vm.Err != nil {
					// One broken view must not abort the rest.
					slog.Error("skipping view", slog.String("view", string(view)), slog.Any("error", vm.Err))
					continue
				}
				for _, spec := range vm.Charts {
					var buf bytes.Buffer
					if err := renderer.Render(spec, &buf); err != nil {
						slog.Error("skipping chart", slog.String("chart", spec.ID), slog.Any("error", err))
						continue
					}
					path := filepath.Join(outDir, spec.ID+".png")
					if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
						return fmt.Errorf("write %s: %w", path, err)
					}
					rendered++
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "rendered %d charts to %s\n", rendered, outDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "charts-out", "output directory")
	cmd.Flags().StringVar(&viewName, "view", "", "render a single view")
	return cmd
}
