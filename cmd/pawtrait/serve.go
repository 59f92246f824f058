package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sagarc03/pawtrait"
	"github.com/sagarc03/pawtrait/allowlist"
	"github.com/sagarc03/pawtrait/config"
	"github.com/sagarc03/pawtrait/database"
	pawhttp "github.com/sagarc03/pawtrait/http"
	"github.com/sagarc03/pawtrait/s3store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Start the Pawtrait HTTP server.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 8080, "HTTP server port")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	cfg, err := config.FromContext(ctx)
	if err != nil {
		return err
	}

	repo, closeDB, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer closeDB()

	slog.Info("connected to metadata backend", "type", cfg.Database.Type, "table", cfg.Database.Table)

	signer, err := s3store.New(ctx, cfg.Storage.Config)
	if err != nil {
		return fmt.Errorf("create presigner: %w", err)
	}

	service, err := pawtrait.NewPhotoService(repo, signer, pawtrait.ServiceConfig{
		URLTTL: cfg.Storage.URLTTL,
	})
	if err != nil {
		return fmt.Errorf("create service: %w", err)
	}

	allow, err := allowlist.FromConfig(cfg.Auth)
	if err != nil {
		return fmt.Errorf("load allow-list: %w", err)
	}
	if allow.Empty() {
		slog.Warn("no family ids allow-listed; every family id is admitted")
	} else {
		slog.Info("family allow-list loaded", "families", len(allow.IDs()))
	}

	handlerConfig := pawhttp.HandlerConfig{
		AllowList: allow,
		CORS:      cfg.CORS,
	}

	handler := pawhttp.NewHandler(&handlerConfig, service)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)

	server := &http.Server{
		Addr:         addr,
		Handler:      handler.Router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down server...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown error", "err", err)
		}
		cancel()
	}()

	slog.Info("starting server", "addr", addr, "bucket", cfg.Storage.Bucket)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
