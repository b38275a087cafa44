// Copyright (c) 2026 Travelist. All rights reserved.
// Author: platform@travelist.ru

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/travelist/tourcat/internal/catalog"
	"github.com/travelist/tourcat/internal/listing"
)

const (
	formatCSV  = "csv"
	formatXLSX = "xlsx"
)

func exportCmd(deps Deps) *cobra.Command {
	var ids []int64
	var all bool
	var out string
	var locale string

	c := &cobra.Command{
		Use:       "export csv|xlsx",
		Short:     "Export tours as a spreadsheet",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{formatCSV, formatXLSX},
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			service, release, err := deps.OpenService(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			tours, err := service.ExportTours(cmd.Context(), listing.ExportFilter{IDs: ids, PublishedOnly: !all})
			if err != nil {
				return err
			}

			dst := cmd.OutOrStdout()
			if out != "" && out != "-" {
				file, createErr := os.Create(out)
				if createErr != nil {
					return fmt.Errorf("export: %w", createErr)
				}
				defer func() {
					if closeErr := file.Close(); err == nil {
						err = closeErr
					}
				}()
				dst = file
			}

			return writeExport(dst, args[0], tours, catalog.TextsFor(locale))
		},
	}

	c.Flags().Int64SliceVar(&ids, "ids", nil, "Comma-separated tour ids (default: every tour)")
	c.Flags().BoolVar(&all, "all", false, "Include unpublished tours")
	c.Flags().StringVarP(&out, "out", "o", "-", "Output file, - for stdout")
	c.Flags().StringVar(&locale, "locale", deps.Locale, "Vocabulary of rendered texts: ru|en")

	return c
}

func writeExport(dst io.Writer, format string, tours []*catalog.Tour, texts *catalog.Texts) error {
	switch format {
	case formatCSV:
		return catalog.WriteCSV(dst, tours, texts)
	case formatXLSX:
		return catalog.WriteXLSX(dst, tours, texts)
	default:
		return fmt.Errorf("export: unknown format %q", format)
	}
}
