package cmd

import (
	"github.com/spf13/cobra"

	"github.com/blogem/useradmin/models"
)

// logsCmd represents the logs command.
var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Query the audit log",
}

// logFilterFlags holds the filter flags shared by the logs subcommands
type logFilterFlags struct {
	action     string
	entityType string
	from       string
	to         string
}

func (f *logFilterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.action, "action", "", "Only entries with this action (Create, Update, Delete)")
	cmd.Flags().StringVar(&f.entityType, "entity-type", "", "Only entries about this entity type")
	cmd.Flags().StringVar(&f.from, "from", "", "Only entries at or after this time (YYYY-MM-DD or RFC 3339)")
	cmd.Flags().StringVar(&f.to, "to", "", "Only entries at or before this time (YYYY-MM-DD or RFC 3339)")
}

func (f *logFilterFlags) filter() (models.LogFilter, error) {
	filter := models.LogFilter{
		Action:     f.action,
		EntityType: f.entityType,
	}

	var err error
	if filter.From, err = models.ParseFilterBound(f.from, false); err != nil {
		return filter, err
	}
	if filter.To, err = models.ParseFilterBound(f.to, true); err != nil {
		return filter, err
	}
	return filter, nil
}

func init() {
	rootCmd.AddCommand(logsCmd)
}
