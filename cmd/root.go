package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/abapcodestudio/codestudio/internal/app"
	"github.com/abapcodestudio/codestudio/internal/channel"
	"github.com/abapcodestudio/codestudio/internal/client"
	"github.com/abapcodestudio/codestudio/internal/config"
	"github.com/abapcodestudio/codestudio/internal/credential"
	"github.com/abapcodestudio/codestudio/internal/logger"
)

var (
	configPath            string
	verboseMode           bool
	jsonOutput            bool
	targetSystem          string
	offlineMode           bool
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "codestudio",
	Short: "Terminal client for ABAP Code Studio",
	Long: `codestudio is a terminal client for ABAP Code Studio, an AI-assisted
development environment for SAP ABAP systems.

Running it without a subcommand opens the interactive UI: chat with the AI,
browse the object catalog, inspect diffs, follow the review pipeline and
approve sessions. Subcommands expose the same backend operations for scripts.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Config file (default ~/.codestudio/config.yaml)")
	pf.String("api-url", config.DefaultAPIURL, "Backend base URL")
	pf.Duration("request-timeout", 0, "Per-request timeout (0 keeps the transport default)")
	pf.Bool("debug", false, "Enable debug logging")
	pf.String("log-path", config.DefaultLogPath, "Debug log file")
	pf.BoolVarP(&verboseMode, "verbose", "v", false, "Mirror log output to stderr")
	pf.BoolVar(&jsonOutput, "json", false, "Print raw JSON instead of tables")

	f := rootCmd.Flags()
	f.String("theme", config.DefaultTheme, "Color theme")
	f.String("start-panel", config.DefaultStartPanel, "Panel shown on startup")
	f.Bool("notifications", false, "Desktop notifications for pipeline and diff events")
	f.Duration("reconnect-delay", config.DefaultReconnectDelay, "Wait between channel reconnect attempts")
	f.StringVarP(&targetSystem, "system", "s", "", "SAP system prompts and catalog queries go to")
	f.BoolVar(&offlineMode, "offline", false, "Start without the backend connection")
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("codestudio %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("codestudio %s\n", version)
}

// setup loads configuration for cmd and initializes logging. Explicitly set
// flags override the config file and environment.
func setup(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	if verboseMode {
		logger.Mirror(os.Stderr)
	}
	if err := logger.Init(cfg.LogPath); err != nil {
		return nil, fmt.Errorf("error opening log: %w", err)
	}
	logger.SetDebug(cfg.Debug || verboseMode)
	return cfg, nil
}

// credentialStore opens the per-user credential file.
func credentialStore() (*credential.Store, error) {
	path, err := credential.DefaultPath()
	if err != nil {
		return nil, fmt.Errorf("error locating credentials: %w", err)
	}
	return credential.NewStore(path), nil
}

// newClient builds a backend client from cfg, authenticated with the stored
// token.
func newClient(cfg *config.Config, store *credential.Store) (*client.Client, error) {
	token, err := store.Load()
	if err != nil {
		return nil, err
	}
	return client.New(cfg.APIURL, token,
		client.WithStore(store),
		client.WithTimeout(cfg.RequestTimeout),
		client.WithLogger(logger.WithComponent("client")),
		client.WithChannelOptions(channel.WithReconnectDelay(cfg.ReconnectDelay)),
	), nil
}

// connect is setup plus a ready client, for subcommands talking to the backend.
func connect(cmd *cobra.Command) (*client.Client, error) {
	cfg, err := setup(cmd)
	if err != nil {
		return nil, err
	}
	store, err := credentialStore()
	if err != nil {
		return nil, err
	}
	return newClient(cfg, store)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}
	defer logger.Close()

	store, err := credentialStore()
	if err != nil {
		return err
	}
	c, err := newClient(cfg, store)
	if err != nil {
		return err
	}

	logger.Info("Starting codestudio %s against %s", version, cfg.APIURL)

	m := app.New(app.Options{
		Config:       cfg,
		Client:       c,
		Store:        store,
		Version:      version,
		TargetSystem: targetSystem,
		Offline:      offlineMode,
	})
	defer m.Close()
	p := tea.NewProgram(m, tea.WithContext(cmd.Context()))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
