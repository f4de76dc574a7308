package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/mdkeeper/internal/client/auth"
)

func (c *Cli) registerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register [username]",
		Short: "Register a new account and log in",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRegister(cmd.Context(), args)
		},
	}
}

func (c *Cli) loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login [username]",
		Short: "Log in to the server",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLogin(cmd.Context(), args)
		},
	}
}

func (c *Cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and forget the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runLogout(cmd.Context())
		},
	}
}

func (c *Cli) disconnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disconnect",
		Short: "Drop pending changes, conflicts and sync state, then log out",
		Long: `Disconnect clears the sync queue, unresolved conflicts, the server
cache and the pull cursor without sending anything. Local documents are kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runDisconnect(cmd.Context())
		},
	}
}

func (c *Cli) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show session and sync status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runStatus(cmd.Context())
		},
	}
}

func (c *Cli) runRegister(ctx context.Context, args []string) error {
	c.io.Println("=== Registration ===")

	username, err := c.readUsername(args)
	if err != nil {
		return err
	}

	password, interactive, err := c.readPassword("Password: ")
	if err != nil {
		return err
	}
	if interactive {
		confirm, err := c.io.ReadPassword("Confirm password: ")
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		if confirm != password {
			return errors.New("passwords do not match")
		}
	}

	data, err := c.auth.Register(ctx, username, password)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	c.io.Println("✓ Registration successful!")
	c.io.Printf("Username: %s\n", data.Username)
	c.io.Printf("User ID:  %s\n", data.UserID)
	return nil
}

func (c *Cli) runLogin(ctx context.Context, args []string) error {
	c.io.Println("=== Login ===")

	username, err := c.readUsername(args)
	if err != nil {
		return err
	}

	password, _, err := c.readPassword("Password: ")
	if err != nil {
		return err
	}

	data, err := c.auth.Login(ctx, username, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	c.io.Println("✓ Login successful!")
	c.io.Printf("Username: %s\n", data.Username)
	c.io.Println("Run 'mdkeeper sync' to synchronize your documents.")
	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.auth.Logout(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	c.io.Println("✓ Logged out")
	if n := c.sync.PendingCount(); n > 0 {
		c.io.Printf("%d change(s) remain queued and will be sent after the next login.\n", n)
	}
	return nil
}

func (c *Cli) runDisconnect(ctx context.Context) error {
	pending := c.sync.PendingCount()
	conflicts := c.sync.ConflictCount()

	if err := c.sync.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect failed: %w", err)
	}
	if err := c.auth.Logout(ctx); err != nil {
		c.logger.Warn("logout after disconnect failed", "error", err)
	}

	c.io.Println("✓ Disconnected")
	if pending > 0 || conflicts > 0 {
		c.io.Printf("Discarded %d pending change(s) and %d conflict(s).\n", pending, conflicts)
	}
	return nil
}

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")

	session, err := c.auth.Current(ctx)
	switch {
	case errors.Is(err, auth.ErrNotLoggedIn):
		c.io.Println("Session: not logged in")
	case err != nil:
		return fmt.Errorf("failed to read session: %w", err)
	default:
		c.io.Printf("Session: %s\n", session.Username)
		expiresAt := time.Unix(session.ExpiresAt, 0)
		if remaining := time.Until(expiresAt); remaining > 0 {
			c.io.Printf("Access token expires in %s\n", remaining.Round(time.Second))
		} else {
			c.io.Println("Access token expired, it will be refreshed on next sync")
		}
	}

	st := c.sync.Status()
	c.io.Printf("Sync state: %s\n", st.State)
	if st.LastSyncedAt.IsZero() {
		c.io.Println("Last synced: never")
	} else {
		c.io.Printf("Last synced: %s\n", st.LastSyncedAt.Format(time.RFC3339))
	}
	if st.LastError != nil {
		c.io.Printf("Last error: %v\n", st.LastError)
	}

	c.io.Printf("Pending: %d, conflicts: %d, failed: %d\n", st.Pending, st.Conflicts, st.Failed)
	for _, item := range c.sync.FailedItems() {
		c.io.Printf("  failed %s %s %q after %d attempt(s), run 'mdkeeper retry %s'\n",
			item.Type, shortID(item.ID), item.Data.Name, item.Retries, shortID(item.ID))
	}
	if st.Conflicts > 0 {
		c.io.Println("Run 'mdkeeper conflicts' to review conflicts.")
	}
	return nil
}
