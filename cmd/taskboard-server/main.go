package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"taskboard/internal/api"
	"taskboard/internal/auth"
	"taskboard/internal/config"
	"taskboard/internal/repository/sqlite"
	"taskboard/internal/server"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	repo, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.QueryTimeout)
	err = auth.EnsureSeedAdmin(ctx, repo, cfg.Auth.SeedAdminUsername, cfg.Auth.SeedAdminPassword, cfg.Auth.BcryptCost)
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error seeding admin user: %v\n", err)
		os.Exit(1)
	}

	authService := auth.NewService(repo, []byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL)
	srv := server.New(cfg, api.New(repo), authService)

	// Serve until interrupted, then drain in-flight requests.
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			os.Exit(1)
		}
	case <-sigCh:
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			fmt.Fprintf(os.Stderr, "Shutdown error: %v\n", err)
			os.Exit(1)
		}
	}
}
