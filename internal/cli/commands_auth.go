package cli

import (
	"fmt"

	"github.com/MKhiriev/go-fuel-keeper/models"
	"github.com/spf13/cobra"
)

func (c *CLI) signUpCommand() *cobra.Command {
	var credentials models.Credentials

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := c.adapter.SignUp(commandContext(cmd), credentials)
			if err != nil {
				return fmt.Errorf("sign up failed: %w", err)
			}
			return c.saveUserSession(cmd, resp, "Signed up")
		},
	}
	bindCredentialFlags(cmd, &credentials)

	return cmd
}

// signInCommand signs in an existing user. The server registers unknown
// emails on the fly, so this also works as a first-time sign-up.
func (c *CLI) signInCommand() *cobra.Command {
	var credentials models.Credentials

	cmd := &cobra.Command{
		Use:   "signin",
		Short: "Sign in (unknown emails are registered)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := c.adapter.SignIn(commandContext(cmd), credentials)
			if err != nil {
				return fmt.Errorf("sign in failed: %w", err)
			}
			return c.saveUserSession(cmd, resp, "Signed in")
		},
	}
	bindCredentialFlags(cmd, &credentials)

	return cmd
}

func (c *CLI) signOutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "signout",
		Short: "Forget the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.sessions.Clear(); err != nil {
				return err
			}
			c.adapter.SetToken("")
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}

func (c *CLI) saveUserSession(cmd *cobra.Command, resp models.AuthResponse, verb string) error {
	session := models.Session{
		UserID: resp.UserID,
		Email:  resp.Email,
		Role:   models.RoleUser,
		Token:  resp.Token,
	}
	if err := c.sessions.Save(session); err != nil {
		return fmt.Errorf("error saving session: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s as %s (user id %s)\n", verb, resp.Email, resp.UserID)
	return nil
}

func bindCredentialFlags(cmd *cobra.Command, credentials *models.Credentials) {
	cmd.Flags().StringVarP(&credentials.Email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&credentials.Password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
}
