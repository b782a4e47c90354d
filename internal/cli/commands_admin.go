package cli

import (
	"fmt"

	"github.com/MKhiriev/go-fuel-keeper/models"
	"github.com/spf13/cobra"
)

func (c *CLI) adminCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrator commands",
	}
	cmd.AddCommand(c.adminSignInCommand(), c.adminDashboardCommand())

	return cmd
}

func (c *CLI) adminSignInCommand() *cobra.Command {
	var credentials models.Credentials

	cmd := &cobra.Command{
		Use:   "signin",
		Short: "Sign in as the administrator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := c.adapter.AdminSignIn(commandContext(cmd), credentials)
			if err != nil {
				return fmt.Errorf("admin sign in failed: %w", err)
			}

			role := resp.Role
			if role == "" {
				role = models.RoleAdmin
			}
			session := models.Session{Email: resp.Email, Role: role, Token: resp.Token}
			if err = c.sessions.Save(session); err != nil {
				return fmt.Errorf("error saving session: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as administrator %s\n", resp.Email)
			return nil
		},
	}
	bindCredentialFlags(cmd, &credentials)

	return cmd
}

func (c *CLI) adminDashboardCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the report over every user's fill-ups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := c.adminSession(); err != nil {
				return err
			}

			stats, err := c.adapter.Dashboard(commandContext(cmd))
			if err != nil {
				return fmt.Errorf("error fetching dashboard: %w", err)
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), stats)
			}
			return renderReport(cmd.OutOrStdout(), stats, true)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print raw JSON")

	return cmd
}

func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print fuelctl build info and the server version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprint(out, c.buildInfo.String())

			serverVersion, err := c.adapter.Version(commandContext(cmd))
			if err != nil {
				return fmt.Errorf("error fetching server version: %w", err)
			}
			fmt.Fprintf(out, "Server version: %s\n", serverVersion)
			return nil
		},
	}
}
