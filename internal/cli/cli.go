// Package cli provides the command-line interface for JobFlow.
package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/ethantsaox/jobflow/internal/config"
	"github.com/ethantsaox/jobflow/internal/log"
	"github.com/ethantsaox/jobflow/internal/manager"
	"github.com/ethantsaox/jobflow/internal/mode"
	"github.com/ethantsaox/jobflow/internal/remote"
	"github.com/ethantsaox/jobflow/internal/store"
	"github.com/ethantsaox/jobflow/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "jobflow",
	Short: "Track job applications, streaks, and goals",
	Long: `JobFlow is an offline-first job application tracker.

Applications, streaks, achievements, and goal progress live in a local
database under ~/.jobflow. Log in to a JobFlow account to serve the same
data from the remote service; when the service is unreachable, operations
transparently fall back to the local store.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(timelineCmd)
	rootCmd.AddCommand(streakCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(goalsCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(modeCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

// Execute runs the CLI with fang enhancements.
func Execute(ctx context.Context) error {
	return fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(version.Short()),
		fang.WithCommit(version.Commit),
	)
}

// env is the wired data layer shared by every command.
type env struct {
	cfg   *config.Config
	paths config.Paths
	store *store.Store
	creds *config.Credentials
	modes *mode.Controller
	mgr   *manager.Manager
}

// newEnv loads config, opens the database, and wires the mode controller
// and data manager per the saved credential.
func newEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	paths := config.GetPaths(cfg)

	if log.Default() == nil {
		if err := log.Init(paths.LogDir); err != nil {
			return nil, fmt.Errorf("initialize log: %w", err)
		}
	}

	st, err := store.New(store.DefaultConfig(paths.Database))
	if err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	creds, err := config.LoadCredentials(paths.Credentials)
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("load credentials: %w", err)
	}

	modes, err := mode.New(st, creds.Valid())
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("initialize mode controller: %w", err)
	}

	var rc manager.Remote
	if creds.Valid() {
		rc = remote.New(cfg.API.BaseURL, creds.Token)
	}

	return &env{
		cfg:   cfg,
		paths: paths,
		store: st,
		creds: creds,
		modes: modes,
		mgr:   manager.New(st, rc, modes, log.Default()),
	}, nil
}

// Close releases the environment's resources.
func (e *env) Close() {
	_ = e.store.Close()
}
