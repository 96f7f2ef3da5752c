package cmd

import (
	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Long: `Apply pending database migrations and exit. The serve and logs commands
apply migrations on start as well.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		return a.Close()
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
