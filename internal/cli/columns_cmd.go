package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dfields/schedtrack/internal/cli/formatter"
	"github.com/dfields/schedtrack/internal/domain"
)

func newColumnsCmd(app *App) *cobra.Command {
	var set string
	var reset bool

	cmd := &cobra.Command{
		Use:   "columns",
		Short: "Show or set which columns the tables display",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			switch {
			case reset:
				names := make([]string, len(domain.Fields))
				for i, f := range domain.Fields {
					names[i] = f.Name
				}
				if err := app.Projects.SetVisibleColumns(ctx, names); err != nil {
					return err
				}
				fmt.Println("Showing all columns.")
				return nil
			case set != "":
				var names []string
				for _, raw := range strings.Split(set, ",") {
					names = append(names, strings.TrimSpace(raw))
				}
				if err := app.Projects.SetVisibleColumns(ctx, names); err != nil {
					return err
				}
				fmt.Printf("Showing %d columns.\n", len(names))
				return nil
			}

			visible, err := app.Projects.VisibleColumns(ctx)
			if err != nil {
				return err
			}
			visibleSet := make(map[string]bool, len(visible))
			for _, name := range visible {
				visibleSet[name] = true
			}

			headers := []string{"Field", "Header", "Visible"}
			rows := make([][]string, 0, len(domain.Fields))
			for _, f := range domain.Fields {
				shown := ""
				if visibleSet[f.Name] {
					shown = "yes"
				}
				rows = append(rows, []string{f.Name, domain.ShortLabel(f.Name), shown})
			}
			if app.plain() {
				fmt.Print(formatter.RenderPlainTable(headers, rows))
			} else {
				fmt.Print(formatter.RenderTable(headers, rows))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&set, "set", "", "Comma-separated field names to display")
	cmd.Flags().BoolVar(&reset, "reset", false, "Show every column again")

	return cmd
}

func newDateFieldCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "date-field [FIELD]",
		Short: "Show or set the milestone field used for categorization",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if len(args) == 1 {
				if err := app.Projects.SetDateField(ctx, args[0]); err != nil {
					return err
				}
				fmt.Printf("Categorizing by %s.\n", domain.ShortLabel(args[0]))
				return nil
			}

			current, err := app.Projects.DateField(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("Categorizing by %s. Date fields:\n", domain.ShortLabel(current))
			for _, f := range domain.DateFields() {
				marker := "  "
				if f.Name == current {
					marker = "* "
				}
				fmt.Printf("%s%s (%s)\n", marker, f.Name, f.Label)
			}
			return nil
		},
	}
}
