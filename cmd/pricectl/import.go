package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"agroledger/internal/importer"
	"agroledger/internal/service"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func importCmd() *cobra.Command {
	var (
		file      string
		dryRun    bool
		batchSize int
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a historical trip export (CSV) into the ledger",
		Long: `Import trips from the CSV export of the old spreadsheet ledger.

Expected headers: Fecha (dd/mm/yyyy), Producto, Proveedor, Cliente,
Cantidad (Kg), Precio de Compra, Cantidad (kg), Precio de Venta.

Examples:
  # Preview what would be imported
  pricectl import --file AM_2025.csv --dry-run

  # Import with smaller insert batches
  pricectl import --file AM_2025.csv --batch-size 50`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", file, err)
			}
			defer f.Close()

			trips, stats, err := importer.NewParser().Parse(cmd.Context(), f)
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", file, err)
			}

			out := cmd.OutOrStdout()
			req := service.ImportRequest{
				Source:    filepath.Base(file),
				Trips:     trips,
				Read:      stats.Rows,
				Skipped:   stats.Skipped(),
				BatchSize: batchSize,
			}

			if dryRun {
				printImportSummary(out, service.ImportResult{Read: req.Read, Skipped: req.Skipped}, stats, true)
				log.Info().Int("trips", len(trips)).Msg("dry run complete, nothing saved")
				return nil
			}

			svc, err := openServices()
			if err != nil {
				return err
			}

			bar := newImportBar(out, len(trips))
			req.OnProgress = func(inserted, _ int) {
				if err := bar.Set(inserted); err != nil {
					log.Warn().Err(err).Msg("failed to update progress bar")
				}
			}

			result, err := svc.imports.ImportTrips(cmd.Context(), actorCLI, req)
			if err != nil {
				_ = bar.Exit()
				return err
			}
			_ = bar.Finish()

			printImportSummary(out, result, stats, false)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "CSV export to import")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "Parse and report without saving")
	cmd.Flags().IntVar(&batchSize, "batch-size", service.DefaultImportBatchSize, "Rows per insert statement")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newImportBar(w io.Writer, total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Importing trips...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(w)
		}),
	)
}

func printImportSummary(w io.Writer, result service.ImportResult, stats importer.ParseStats, dryRun bool) {
	title := "Import summary"
	if dryRun {
		title = "Import preview (dry run)"
	}

	rows := []string{
		row("Rows read", fmt.Sprintf("%d", result.Read)),
	}
	if dryRun {
		rows = append(rows, row("Would insert", fmt.Sprintf("%d", stats.Parsed)))
	} else {
		rows = append(rows, row("Inserted", fmt.Sprintf("%d", result.Inserted)))
	}
	rows = append(rows,
		row("Skipped", fmt.Sprintf("%d", result.Skipped)),
		row("  unreadable date", fmt.Sprintf("%d", stats.SkippedDate)),
		row("  missing product", fmt.Sprintf("%d", stats.SkippedProduct)),
	)

	fmt.Fprintln(w, titleStyle.Render(title))
	for _, r := range rows {
		fmt.Fprintln(w, r)
	}
}

func row(label, value string) string {
	return labelStyle.Render(label) + value
}
