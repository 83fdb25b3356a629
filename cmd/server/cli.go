package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"codeberg.org/wepoker/server/api/rest/health"
	"codeberg.org/wepoker/server/internal/config"
	"codeberg.org/wepoker/server/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "wepoker-server",
	Short:         "WePoker front end server",
	Long:          "Serves the WePoker single page front end and its game status API.",
	Args:          cobra.NoArgs,
	RunE:          runServe,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the server version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), health.Version)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	config.BindFlags(rootCmd.Flags())
	rootCmd.AddCommand(versionCmd)
}

// resolves .env, environment and flags into one config
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		return nil, err
	}

	if err := config.ApplyFlags(cmd.Flags(), cfg); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}

	return cfg, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.SetDefault(logger.New(cfg.Environment, nil))

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("starting wepoker server", "version", health.Version, "environment", cfg.Environment)

	srv, err := NewServer(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// bind failures and serve errors surface in main as a fatal log and exit 1
	return srv.Run(ctx)
}
