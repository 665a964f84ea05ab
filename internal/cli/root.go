// Package cli provides the command-line interface for the journal.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"confluence-journal/internal/catalog"
	"confluence-journal/internal/config"
	"confluence-journal/internal/logging"
	"confluence-journal/internal/remote"
	"confluence-journal/internal/store"
)

// Version information
const (
	Version = "0.1.0"
)

// App holds the application dependencies.
type App struct {
	Config    *config.Config
	ConfigDir string
	Logger    zerolog.Logger
	Catalog   catalog.Catalog
	Store     *store.TradeStore
	Outbox    *remote.Outbox

	docs store.DocumentStore
}

// NewApp wires the catalog, local store and remote mirror from config.
// Construction never fails outright: a broken database or an absent sync
// endpoint degrades that piece, the rest of the journal keeps working.
func NewApp(cfg *config.Config, configDir string, logger zerolog.Logger) *App {
	app := &App{
		Config:    cfg,
		ConfigDir: configDir,
		Logger:    logger,
	}

	cat, err := catalog.Load(configDir)
	if err != nil {
		logger.Warn().Err(err).Msg("Loading confluence catalog failed, using built-in catalog")
		cat = catalog.Default()
	}
	app.Catalog = cat

	var docs store.DocumentStore
	docs, err = store.NewSQLiteDocumentStore(cfg.Storage.Path)
	if err != nil {
		logger.Warn().Err(err).Msg("Opening journal database failed, trades will not survive this session")
		docs = store.NewMemDocumentStore()
	}
	app.docs = docs

	var mirror store.Mirror
	if cfg.SyncReady() {
		sink, err := remote.NewHTTPSink(remote.HTTPSinkConfig{
			URL:     cfg.Sync.URL,
			APIKey:  cfg.Credentials.Sync.APIKey,
			Timeout: cfg.Sync.Timeout(),
		})
		if err != nil {
			logger.Warn().Err(err).Msg("Remote sync misconfigured, mirroring disabled")
		} else {
			app.Outbox = remote.NewOutbox(sink, logging.WithComponent(logger, "outbox"))
			mirror = app.Outbox
			logger.Debug().Str("url", cfg.Sync.URL).Msg("Remote mirror initialized")
		}
	}

	app.Store = store.NewTradeStore(docs, mirror, logging.WithComponent(logger, "store"))
	app.Store.Hydrate()

	return app
}

// Close flushes the outbox and releases the database.
func (a *App) Close() {
	if a.Outbox != nil {
		a.Outbox.Close()
	}
	if a.docs != nil {
		if err := a.docs.Close(); err != nil {
			a.Logger.Warn().Err(err).Msg("Closing journal database failed")
		}
	}
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "journal",
		Short: "Confluence Journal - scored trading journal CLI",
		Long: `Confluence Journal is a trading journal built around a weighted
confluence checklist.

Score a setup against your catalog before entering, record the trade with
the score snapshot, and review win rate, per-pair P&L and a monthly
calendar afterwards.

Use 'journal help <command>' for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/confluence-journal)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	addCoreCommands(rootCmd, app)
	addScoreCommands(rootCmd, app)
	addTradeCommands(rootCmd, app)
	addDashboardCommands(rootCmd, app)

	return rootCmd
}

// addCoreCommands adds core utility commands.
func addCoreCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newVersionCmd(app))
	rootCmd.AddCommand(newConfigCmd(app))
}

func newVersionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := app.NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"version": Version})
			} else {
				output.Printf("Confluence Journal v%s\n", Version)
			}
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View and manage application configuration.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := app.NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(app.Config)
			}
			showConfig(output, app)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		Run: func(cmd *cobra.Command, args []string) {
			output := app.NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"path": app.ConfigDir})
			} else {
				output.Println(app.ConfigDir)
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration files",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := app.NewOutput(cmd)
			if err := app.Config.Validate(); err != nil {
				output.Error("Configuration validation failed: %v", err)
				return err
			}
			if output.IsJSON() {
				output.JSON(map[string]bool{"valid": true})
			} else {
				output.Success("✓ Configuration is valid")
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "init-catalog",
		Short: "Write the default confluences.toml for editing",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := app.NewOutput(cmd)
			if err := config.CreateTemplateConfluences(app.ConfigDir); err != nil {
				output.Error("Writing confluences.toml failed: %v", err)
				return err
			}
			output.Success("✓ Catalog written to %s/confluences.toml", app.ConfigDir)
			return nil
		},
	})

	return cmd
}

func showConfig(output *Output, app *App) {
	cfg := app.Config

	output.Bold("Storage")
	output.Printf("  Database:      %s\n", cfg.Storage.Path)
	output.Println()

	output.Bold("Sync")
	output.Printf("  Enabled:       %v\n", cfg.Sync.Enabled)
	if cfg.Sync.URL != "" {
		output.Printf("  URL:           %s\n", cfg.Sync.URL)
	}
	output.Printf("  Timeout:       %s\n", cfg.Sync.Timeout())
	output.Printf("  Ready:         %v\n", cfg.SyncReady())
	output.Println()

	output.Bold("Catalog")
	output.Printf("  Confluences:   %d\n", app.Catalog.Len())
	output.Printf("  Max score:     %d\n", app.Catalog.TotalWeight())
	output.Println()

	output.Bold("Logging")
	output.Printf("  Level:         %s\n", cfg.Logging.Level)
	output.Printf("  File:          %s\n", cfg.Logging.FilePath)
}
