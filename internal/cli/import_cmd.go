package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/dfields/schedtrack/internal/cli/formatter"
	"github.com/dfields/schedtrack/internal/domain"
	"github.com/dfields/schedtrack/internal/filter"
	"github.com/dfields/schedtrack/internal/schedule"
)

func newImportCmd(app *App) *cobra.Command {
	var dateField string
	var filters []string
	var sortByDate bool
	var saveAll, saveChanged bool
	var saveIDs []int64

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import a schedule spreadsheet and show it against the saved baseline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			field, err := resolveDateField(ctx, app, dateField)
			if err != nil {
				return err
			}

			// The saved records are the working set a fresh import merges
			// into, so unmatched saved rows stay visible.
			working, err := app.Projects.ListSaved(ctx)
			if err != nil {
				return err
			}

			outcome, err := app.Imports.ImportFile(ctx, args[0], working, field)
			if err != nil {
				return err
			}

			records, visible, err := applyView(ctx, app, outcome.Records, filters)
			if err != nil {
				return err
			}
			if sortByDate {
				records = schedule.SortByDate(records, field)
			}

			fmt.Print(formatter.ProjectTable(records, visible, app.plain()))
			fmt.Println(formatter.ImportSummary(outcome.Total, outcome.New, outcome.Updated, outcome.Changed))

			toSave := selectForSave(outcome.Records, saveAll, saveChanged, saveIDs)
			if len(toSave) == 0 {
				return nil
			}
			saved, err := app.Projects.Save(ctx, toSave)
			if err != nil {
				return err
			}
			fmt.Printf("Saved %d of %d records\n", saved.Saved, len(toSave))
			for _, id := range sortedKeys(saved.Errors) {
				fmt.Printf("  %d: %v\n", id, saved.Errors[id])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dateField, "date-field", "", "Date field to categorize by (default from settings)")
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "Search term, plain text or \"Column: value\" (repeatable)")
	cmd.Flags().BoolVar(&sortByDate, "sort", false, "Sort by the categorization date field")
	cmd.Flags().BoolVar(&saveAll, "save-all", false, "Persist every record after the import")
	cmd.Flags().BoolVar(&saveChanged, "save-changed", false, "Persist only records the import changed")
	cmd.Flags().Int64SliceVar(&saveIDs, "save-ids", nil, "Persist specific record ids")

	return cmd
}

func newRefreshCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh FILE",
		Short: "Replace saved records with the file's version, wiping their history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome, err := app.Imports.RefreshSaved(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Refreshed %d saved records", outcome.Refreshed)
			if outcome.Missing > 0 {
				fmt.Printf(" (%d saved ids not in file, left untouched)", outcome.Missing)
			}
			fmt.Println()
			return nil
		},
	}
}

func resolveDateField(ctx context.Context, app *App, flagValue string) (string, error) {
	if flagValue != "" {
		if spec, ok := domain.FieldByName(flagValue); !ok || spec.Kind != domain.KindDate {
			return "", fmt.Errorf("%q is not a date field", flagValue)
		}
		return flagValue, nil
	}
	return app.Projects.DateField(ctx)
}

// applyView resolves the visible column set and applies search filters.
func applyView(ctx context.Context, app *App, records []*domain.Project, filters []string) ([]*domain.Project, []string, error) {
	visible, err := app.Projects.VisibleColumns(ctx)
	if err != nil {
		return nil, nil, err
	}
	if len(filters) == 0 {
		return records, visible, nil
	}

	visibleSet := make(map[string]bool, len(visible))
	for _, name := range visible {
		visibleSet[name] = true
	}
	terms := make([]filter.Term, len(filters))
	for i, raw := range filters {
		terms[i] = filter.ParseTerm(raw)
	}
	return filter.Apply(records, terms, visibleSet), visible, nil
}

func selectForSave(records []*domain.Project, all, changed bool, ids []int64) []*domain.Project {
	switch {
	case all:
		return records
	case changed:
		var out []*domain.Project
		for _, p := range records {
			if p.IsChanged {
				out = append(out, p)
			}
		}
		return out
	case len(ids) > 0:
		byID := make(map[int64]*domain.Project, len(records))
		for _, p := range records {
			byID[p.ID] = p
		}
		var out []*domain.Project
		for _, id := range ids {
			if p, ok := byID[id]; ok {
				out = append(out, p)
			}
		}
		return out
	default:
		return nil
	}
}

func sortedKeys(m map[int64]error) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
