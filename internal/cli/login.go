package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ethantsaox/jobflow/internal/config"
	"github.com/ethantsaox/jobflow/internal/mode"
)

var loginFlags struct {
	email string
	token string
	sync  bool
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to a JobFlow account",
	Long: `Sign in to a JobFlow account and switch to authenticated mode.

The access token comes from the account page of the web app. After login,
reads and writes go to the remote service first, with the local store as a
transparent fallback.

Pass --sync to push existing local applications to the account. Note that
sync re-uploads everything each time it runs: applications already pushed
in an earlier run are duplicated on the account.`,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and return to local-only mode",
	RunE:  runLogout,
}

func init() {
	loginCmd.Flags().StringVar(&loginFlags.email, "email", "", "account email")
	loginCmd.Flags().StringVar(&loginFlags.token, "token", "", "access token (prompted if omitted)")
	loginCmd.Flags().BoolVar(&loginFlags.sync, "sync", false, "push local applications to the account after login")
}

func runLogin(cmd *cobra.Command, args []string) error {
	token := loginFlags.token
	if token == "" {
		fmt.Print("Access token: ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("read token: %w", err)
		}
		token = strings.TrimSpace(line)
	}
	if token == "" {
		return fmt.Errorf("no token provided")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	paths := config.GetPaths(cfg)

	creds := &config.Credentials{
		Email:     loginFlags.email,
		Token:     token,
		ExpiresAt: time.Now().Add(30 * 24 * time.Hour),
	}
	if err := config.SaveCredentials(paths.Credentials, creds); err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}

	// Re-wire with the fresh credential and switch modes.
	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	if err := e.modes.Set(mode.Authenticated); err != nil {
		return fmt.Errorf("set mode: %w", err)
	}
	fmt.Println("Signed in. Operating in authenticated mode.")

	if loginFlags.sync {
		result, err := e.mgr.SyncLocalToServer(cmd.Context())
		if err != nil {
			return fmt.Errorf("sync: %w", err)
		}
		fmt.Printf("Synced %s applications to the account.\n", result.Message)
	}
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	if err := config.DeleteCredentials(e.paths.Credentials); err != nil {
		return fmt.Errorf("delete credentials: %w", err)
	}
	if err := e.modes.Set(mode.Local); err != nil {
		return fmt.Errorf("set mode: %w", err)
	}
	fmt.Println("Signed out. Operating in local-only mode.")
	return nil
}
