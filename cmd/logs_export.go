package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/blogem/useradmin/export"
)

var (
	exportFilter    logFilterFlags
	exportOutput    string
	exportBatchSize int
)

// logsExportCmd represents the logs export command.
var logsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export audit log entries as JSON lines",
	Long: `Export every audit log entry matching the filter to a file, one JSON
object per line, newest first.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		filter, err := exportFilter.filter()
		if err != nil {
			return err
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		result, err := export.Run(
			cmd.Context(),
			logger,
			export.LogServiceFetcher(a.services.Log, filter),
			export.NewFileExporter(exportOutput),
			exportBatchSize,
			func(exported, total int) {
				logger.Debug("export progress", slog.Int("exported", exported), slog.Int("total", total))
			},
		)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		logger.Info("export complete",
			slog.String("output", exportOutput),
			slog.Int("exported", result.ExportedEntries),
			slog.Int("total", result.TotalEntries),
		)
		return nil
	},
}

func init() {
	logsCmd.AddCommand(logsExportCmd)

	exportFilter.register(logsExportCmd)
	logsExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "File to write (required)")
	logsExportCmd.Flags().IntVar(&exportBatchSize, "batch-size", export.DefaultBatchSize, "Entries fetched per query")
	_ = logsExportCmd.MarkFlagRequired("output")
}
