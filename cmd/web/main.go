package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/de-tools/dipole-link/pkg/metrics"
	"github.com/de-tools/dipole-link/pkg/server"
	"github.com/de-tools/dipole-link/pkg/services/config"
	"github.com/de-tools/dipole-link/pkg/services/link"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	constantsPath string
	profilesPath  string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the dipole link budget web API",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&constantsPath, "constants", "c", "",
		"Path to a YAML/JSON/TOML file overriding the physical constants")
	rootCmd.Flags().StringVarP(&profilesPath, "profiles", "p", "",
		"Path to an INI file with link profiles")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	constants, err := config.LoadConstants(constantsPath)
	if err != nil {
		return fmt.Errorf("failed to load constants: %w", err)
	}

	calc, err := link.NewCalculator(constants)
	if err != nil {
		return fmt.Errorf("failed to create calculator: %w", err)
	}

	deps := server.Dependencies{
		Calculator: calc,
		Metrics:    metrics.NewRegistry(),
		Logger:     logger,
	}

	if profilesPath != "" {
		profiles, err := config.NewProfileRegistry(profilesPath)
		if err != nil {
			return fmt.Errorf("failed to create profile registry: %w", err)
		}
		deps.Profiles = profiles

		logger.Info().Msgf("Profiles found at `%s` successfully loaded.", profilesPath)
		logProfiles(cmd.Context(), logger, profiles)
	}

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(server.Config{
		Addr:            net.JoinHostPort(host, port),
		ShutdownTimeout: 10 * time.Second,
		Dependencies:    deps,
	})

	return api.Start()
}

func logProfiles(ctx context.Context, logger zerolog.Logger, profiles config.ProfileRegistry) {
	names, err := profiles.GetProfiles(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to list profiles")
		return
	}
	for _, name := range names {
		logger.Info().Msgf("Name: `%s`", name)
	}
}
