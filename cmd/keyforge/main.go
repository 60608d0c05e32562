// Copyright (c) 2025 ToeiRei
// Keyforge - configurable key and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface (CLI) for the Keyforge
// application using the Cobra library. It defines the root command,
// subcommands (generate, words, uuid, chart, history), flags, and the
// main entry point for execution.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/toeirei/keyforge/buildvars"
	"github.com/toeirei/keyforge/internal/config"
	"github.com/toeirei/keyforge/internal/db"
	"github.com/toeirei/keyforge/internal/diag"
	"github.com/toeirei/keyforge/internal/i18n"
)

var cfgFile string
var verbose bool
var saveConfig bool

// appConfig holds the application-level settings layered from the config
// file, KEYFORGE environment variables and flags.
type appConfig struct {
	Database struct {
		Type string `mapstructure:"type" yaml:"type"`
		DSN  string `mapstructure:"dsn" yaml:"dsn"`
	} `mapstructure:"database" yaml:"database"`
	Language string `mapstructure:"language" yaml:"language"`
}

var app appConfig

// sink is the shared diagnostics sink for all commands.
var sink diag.Sink = diag.Discard

// main is the entry point of the application.
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", i18n.T("error.prefix"), err)
		os.Exit(1)
	}
}

var rootCmd *cobra.Command

func init() {
	rootCmd = newRootCmd()
}

// newRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keyforge",
		Short: "Keyforge is a configurable random key and passphrase generator.",
		Long: `Keyforge assembles random keys from a configurable character set.
Exclusion tags carve characters out of the full printable set, separators
wrap the result into readable groups, and keys can be base64-encoded,
generated in bulk, built from dictionary words, or exported to files.

Running without a subcommand generates a single key with defaults.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadAppConfig(cmd)
			if err != nil {
				return err
			}
			app = c
			i18n.Init(app.Language)
			sink = diag.New(os.Stderr, verbose)
			if saveConfig {
				if err := config.WriteConfigFile(&app, false); err != nil {
					return err
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args)
		},
	}

	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newWordsCmd())
	cmd.AddCommand(newUUIDCmd())
	cmd.AddCommand(newChartCmd())
	cmd.AddCommand(newHistoryCmd())
	cmd.AddCommand(newVersionCmd())

	cmd.Version = buildvars.VersionOrDefault("dev")

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./keyforge.yaml)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug diagnostics")
	cmd.PersistentFlags().String("db-type", "sqlite", "Database type (e.g., sqlite, postgres, mysql)")
	cmd.PersistentFlags().String("db-dsn", "./keyforge.db", "Database connection string (DSN)")
	cmd.PersistentFlags().String("lang", "en", `CLI language ("en", "de")`)
	cmd.PersistentFlags().BoolVar(&saveConfig, "save-config", false, "persist the resolved settings to the user config file")

	addGenerateFlags(cmd)

	return cmd
}

// loadAppConfig layers defaults, keyforge.yaml, environment variables and
// flags into an appConfig. The db-type, db-dsn and lang flags override
// their file keys when explicitly set.
func loadAppConfig(cmd *cobra.Command) (appConfig, error) {
	var path *string
	if cfgFile != "" {
		path = &cfgFile
	}
	c, err := config.LoadConfig[appConfig](cmd, map[string]any{
		"database.type": "sqlite",
		"database.dsn":  "./keyforge.db",
		"language":      "en",
	}, path)
	if err != nil {
		return c, err
	}
	if f := cmd.Flags().Lookup("db-type"); f != nil && f.Changed {
		c.Database.Type = f.Value.String()
	}
	if f := cmd.Flags().Lookup("db-dsn"); f != nil && f.Changed {
		c.Database.DSN = f.Value.String()
	}
	if f := cmd.Flags().Lookup("lang"); f != nil && f.Changed {
		c.Language = f.Value.String()
	}
	return c, nil
}

// newVersionCmd represents the 'version' command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: i18n.T("version.short"),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildvars.VersionOrDefault("dev"))
		},
	}
}

// openStore lazily initializes the database. Only commands that record or
// read history touch the store; plain generation never needs it.
func openStore() error {
	if db.IsInitialized() {
		return nil
	}
	if err := db.InitDB(app.Database.Type, app.Database.DSN); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	return nil
}
