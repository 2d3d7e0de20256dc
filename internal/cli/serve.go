package cli

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"taskman/internal/app"
	"taskman/internal/domain"
	"taskman/internal/infra/mockapi"
)

// newServeCommand creates the serve command, which runs the simulated
// remote service standalone so other clients (or another taskman with
// api_url set) can talk to it.
func newServeCommand(c *app.Container) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the simulated remote service standalone",
		RunE: func(cmd *cobra.Command, _ []string) error {
			server := mockapi.New(c.Store, domain.RealClock{})
			fmt.Fprintf(cmd.OutOrStdout(), "Simulated service listening on %s\n", addr)
			return http.ListenAndServe(addr, server.Handler())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8947", "listen address")

	return cmd
}
