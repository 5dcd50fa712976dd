// Package cmd implements the command-line interface for rosterwatch.
// It provides the root command and subcommands for refreshing rosters and
// managing the college catalog.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jonesrussell/rosterwatch/cmd/colleges"
	cmdrefresh "github.com/jonesrussell/rosterwatch/cmd/refresh"
	cmdscheduler "github.com/jonesrussell/rosterwatch/cmd/scheduler"
	"github.com/jonesrussell/rosterwatch/internal/config"
)

var (
	// cfgFile holds the path to the configuration file.
	cfgFile string

	// debug enables debug mode for all commands.
	debug bool

	// rootCmd represents the root command for the rosterwatch CLI.
	rootCmd = &cobra.Command{
		Use:   "rosterwatch",
		Short: "College roster tracker",
		Long:  `Tracks college team rosters by scraping a roster-and-recruiting site into a persistent store.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
)

// Execute runs the root command.
func Execute() error {
	// Load .env early so environment variables are available to viper.
	_ = godotenv.Load()

	if err := initConfig(); err != nil {
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}

	return rootCmd.ExecuteContext(context.Background())
}

// init initializes the root command and its subcommands.
func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"config file (default is ./config.yaml)",
	)
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug mode")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("rosterwatch version %s\n", "1.0.0")
		},
	})

	rootCmd.AddCommand(cmdrefresh.Command())
	rootCmd.AddCommand(colleges.Command())
	rootCmd.AddCommand(cmdscheduler.Command())
}

// initConfig reads in the config file and environment variables.
func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	config.SetDefaults()

	// Config file is optional; defaults and environment variables cover it.
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: config file not found: %v (using defaults and environment variables)\n", err)
	}

	if err := bindEnvVars(); err != nil {
		return err
	}

	// Parse flags early so debug reaches the logger config.
	_ = rootCmd.ParseFlags(os.Args[1:])
	if debug {
		viper.Set("app.debug", true)
	}

	return nil
}

// bindEnvVars maps environment variables to config keys.
func bindEnvVars() error {
	binds := map[string]string{
		"app.environment":   "APP_ENV",
		"logger.level":      "LOG_LEVEL",
		"logger.encoding":   "LOG_FORMAT",
		"database.host":     "DATABASE_HOST",
		"database.port":     "DATABASE_PORT",
		"database.user":     "DATABASE_USER",
		"database.password": "DATABASE_PASSWORD",
		"database.dbname":   "DATABASE_NAME",
		"database.sslmode":  "DATABASE_SSLMODE",
		"refresh.base_url":  "REFRESH_BASE_URL",
		"refresh.season":    "REFRESH_SEASON",
	}
	for key, env := range binds {
		if err := viper.BindEnv(key, env); err != nil {
			return fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}
	return nil
}
