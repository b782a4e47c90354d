package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-fuel-keeper/internal/adapter"
	"github.com/MKhiriev/go-fuel-keeper/internal/logger"
	"github.com/MKhiriev/go-fuel-keeper/models"
	"github.com/spf13/cobra"
)

// SessionStore keeps the signed-in identity between fuelctl invocations.
type SessionStore interface {
	Load() (models.Session, error)
	Save(session models.Session) error
	Clear() error
}

// CLI owns the dependencies shared by every fuelctl command.
type CLI struct {
	adapter   adapter.ServerAdapter
	sessions  SessionStore
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	now func() time.Time
}

func New(serverAdapter adapter.ServerAdapter, sessions SessionStore, buildInfo models.AppBuildInfo, logger *logger.Logger) *CLI {
	return &CLI{
		adapter:   serverAdapter,
		sessions:  sessions,
		buildInfo: buildInfo,
		logger:    logger,
		now:       time.Now,
	}
}

// RootCommand assembles the full command tree. A fresh tree is returned on
// every call so tests can execute commands in isolation.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "fuelctl",
		Short: "Track fuel expenses against a fuel-keeper server",
		Long: "fuelctl records fill-ups, imports them in bulk and renders " +
			"spending reports from a fuel-keeper server.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolP("verbose", "v", false, "log requests to stderr")

	root.AddCommand(
		c.signUpCommand(),
		c.signInCommand(),
		c.signOutCommand(),
		c.addCommand(),
		c.importCommand(),
		c.listCommand(),
		c.showCommand(),
		c.editCommand(),
		c.removeCommand(),
		c.statsCommand(),
		c.adminCommand(),
		c.versionCommand(),
	)

	return root
}

// userSession restores a regular user session and hands its token to the
// adapter.
func (c *CLI) userSession() (models.Session, error) {
	session, err := c.restore()
	if err != nil {
		return models.Session{}, err
	}
	if session.IsAdmin() {
		return models.Session{}, ErrUserRequired
	}
	return session, nil
}

func (c *CLI) adminSession() (models.Session, error) {
	session, err := c.restore()
	if err != nil {
		return models.Session{}, err
	}
	if !session.IsAdmin() {
		return models.Session{}, ErrAdminRequired
	}
	return session, nil
}

func (c *CLI) restore() (models.Session, error) {
	session, err := c.sessions.Load()
	if err != nil {
		c.logger.Debug().Err(err).Str("func", "cli.restore").Msg("no usable session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrNotSignedIn, err)
	}

	c.adapter.SetToken(session.Token)
	return session, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
