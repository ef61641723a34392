package cli

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/dfields/schedtrack/internal/service"
)

// App holds references to the service interfaces used by CLI commands.
type App struct {
	Imports  service.ImportService
	Projects service.ProjectService

	// ServerHandler builds the REST handler for the serve command.
	ServerHandler func() http.Handler
	// ListenAddr is the configured default for serve.
	ListenAddr string

	// IsInteractive reports whether stdout is a terminal; non-interactive
	// output drops styling and renders tab-separated tables.
	IsInteractive func() bool
}

func (app *App) plain() bool {
	return app.IsInteractive == nil || !app.IsInteractive()
}

// NewRootCmd creates the top-level "schedtrack" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "schedtrack",
		Short: "Track schedule spreadsheets and what changed between them",
	}

	root.AddCommand(
		newImportCmd(app),
		newRefreshCmd(app),
		newListCmd(app),
		newShowCmd(app),
		newRemoveCmd(app),
		newChangesCmd(app),
		newColumnsCmd(app),
		newDateFieldCmd(app),
		newServeCmd(app),
	)

	return root
}
