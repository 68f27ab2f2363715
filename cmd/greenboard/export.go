package main

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/greenboard-org/greenboard/export"
)

func newExportCmd(flags *rootFlags) *cobra.Command {
	var format string
	var filename string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the dataset as CSV or JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(cmd.Context(), flags)
			if err != nil {
				return err
			}

			f := export.Format(format)
			mime := export.MIMECSV
			if f == export.FormatJSON {
				mime = export.MIMEJSON
			}
			if filename == "" {
				filename = "buildings." + format
			}

			var buf bytes.Buffer
			if err := export.Write(sess.records, f, &buf); err != nil {
				if errors.Is(err, export.ErrEmptyDataset) {
					// User-visible notice, no file.
					fmt.Fprintln(cmd.ErrOrStderr(), "Nothing to export: the dataset is empty.")
					return nil
				}
				return err
			}

			sink := export.Sink{Dir: sess.cfg.ExportDir, Logger: slog.Default()}
			path, err := sink.Download(buf.Bytes(), filename, mime)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d records to %s\n", len(sess.records), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", "export format: csv or json")
	cmd.Flags().StringVar(&filename, "out", "", "output filename (default buildings.<format>)")
	return cmd
}
