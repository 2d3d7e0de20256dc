package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskman/internal/app"
)

// newLoginCommand creates the login command.
func newLoginCommand(c *app.Container) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:     "login",
		Short:   "Authenticate against the remote service",
		GroupID: groupAuth,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.Session.Login(cmd.Context(), username, password); err != nil {
				return err
			}
			session := c.Session.Session()
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", session.Username)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

// newLogoutCommand creates the logout command.
func newLogoutCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "logout",
		Short:   "Clear the stored session",
		GroupID: groupAuth,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c.Session.Logout()
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}
