package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/dfields/schedtrack/internal/cli/formatter"
	"github.com/dfields/schedtrack/internal/domain"
	"github.com/dfields/schedtrack/internal/schedule"
)

func parseRecordID(input string) (int64, error) {
	id, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid record id %q", input)
	}
	return id, nil
}

func newListCmd(app *App) *cobra.Command {
	var dateField string
	var filters []string
	var sortByDate bool
	var pastDue bool
	var upcoming int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved records",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			field, err := resolveDateField(ctx, app, dateField)
			if err != nil {
				return err
			}

			saved, err := app.Projects.ListSaved(ctx)
			if err != nil {
				return err
			}

			now := time.Now().UTC()
			records := schedule.Categorize(saved, field, now)
			switch {
			case pastDue:
				records = schedule.FilterPastDue(records, field, now)
			case upcoming > 0:
				records = schedule.FilterUpcoming(records, field, now, upcoming)
			}

			records, visible, err := applyView(ctx, app, records, filters)
			if err != nil {
				return err
			}
			if sortByDate {
				records = schedule.SortByDate(records, field)
			}

			if len(records) == 0 {
				fmt.Println("No saved records.")
				return nil
			}
			fmt.Print(formatter.ProjectTable(records, visible, app.plain()))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateField, "date-field", "", "Date field to categorize by (default from settings)")
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "Search term, plain text or \"Column: value\" (repeatable)")
	cmd.Flags().BoolVar(&sortByDate, "sort", false, "Sort by the categorization date field")
	cmd.Flags().BoolVar(&pastDue, "past-due", false, "Only records whose date has passed")
	cmd.Flags().IntVar(&upcoming, "upcoming", 0, "Only records due within N days")

	return cmd
}

func newShowCmd(app *App) *cobra.Command {
	var dateField string

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show a saved record in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := parseRecordID(args[0])
			if err != nil {
				return err
			}
			field, err := resolveDateField(ctx, app, dateField)
			if err != nil {
				return err
			}
			p, err := app.Projects.Get(ctx, id)
			if err != nil {
				return err
			}
			p = schedule.Categorize([]*domain.Project{p}, field, time.Now().UTC())[0]
			fmt.Print(formatter.ProjectDetail(p))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateField, "date-field", "", "Date field to categorize by (default from settings)")
	return cmd
}

func newRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a saved record and its change history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRecordID(args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Remove(context.Background(), id); err != nil {
				return err
			}
			fmt.Printf("Removed record %d\n", id)
			return nil
		},
	}
}

func newChangesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "changes ID",
		Short: "Show a record's change history, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRecordID(args[0])
			if err != nil {
				return err
			}
			changes, err := app.Projects.Changes(context.Background(), id)
			if err != nil {
				return err
			}
			if len(changes) == 0 {
				fmt.Println("No recorded changes.")
				return nil
			}
			fmt.Print(formatter.ChangeLog(changes, app.plain()))
			return nil
		},
	}
}
