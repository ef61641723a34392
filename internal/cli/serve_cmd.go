package cli

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the saved records over a JSON REST API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.ServerHandler == nil {
				return fmt.Errorf("serve is only available with a local database")
			}
			listen := addr
			if listen == "" {
				listen = app.ListenAddr
			}
			fmt.Printf("Listening on http://%s\n", listen)
			return http.ListenAndServe(listen, app.ServerHandler())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (host:port)")

	return cmd
}
