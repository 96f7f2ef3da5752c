package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/blogem/useradmin/models"
)

var (
	listFilter   logFilterFlags
	listPage     int
	listPageSize int
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// logsListCmd represents the logs list command.
var logsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print one page of audit log entries, newest first",
	RunE: func(cmd *cobra.Command, _ []string) error {
		filter, err := listFilter.filter()
		if err != nil {
			return err
		}
		filter.Page = listPage
		filter.PageSize = listPageSize

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		page, err := a.services.Log.GetLogPage(cmd.Context(), filter)
		if err != nil {
			return err
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(page)
		}

		fmt.Println(renderLogTable(page))
		return nil
	},
}

// renderLogTable renders a page of entries followed by the page position
func renderLogTable(page *models.LogPage) string {
	rows := make([][]string, 0, len(page.Items))
	for _, item := range page.Items {
		rows = append(rows, []string{
			strconv.Itoa(item.ID),
			item.Timestamp.UTC().Format("2006-01-02 15:04:05"),
			item.Action,
			item.EntityType + " #" + strconv.Itoa(item.EntityID),
			item.Details,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(dimStyle).
		Headers("ID", "TIMESTAMP (UTC)", "ACTION", "ENTITY", "DETAILS").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	footer := dimStyle.Render(fmt.Sprintf("page %d of %d, %d entries",
		page.Filter.Page, page.TotalPages, page.TotalItems))

	return t.Render() + "\n" + footer
}

func init() {
	logsCmd.AddCommand(logsListCmd)

	listFilter.register(logsListCmd)
	logsListCmd.Flags().IntVar(&listPage, "page", 1, "Page to print")
	logsListCmd.Flags().IntVar(&listPageSize, "page-size", 0, "Entries per page (default LOG_PAGE_SIZE)")
}
