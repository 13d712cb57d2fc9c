package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"paipuScope/internal/config"
	"paipuScope/internal/majsoul"
	"paipuScope/internal/protocol"
	"paipuScope/internal/server"
)

func runServe(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadServe(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.Host == "" {
		return fmt.Errorf("majsoul host is required")
	}
	if cfg.Username == "" || cfg.Password == "" {
		return fmt.Errorf("majsoul username and password are required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source := majsoul.NewSource(majsoul.Config{
		Host:     cfg.Host,
		Username: cfg.Username,
		Password: cfg.Password,
		Timeout:  cfg.Timeout,
	}, logger)

	pipeline := server.NewPipeline(source, protocol.NewRegistry(), logger)
	api := server.New(pipeline, logger)

	httpServer := &http.Server{
		Addr:    cfg.Listen,
		Handler: api.Handler(),
	}

	logger.Info("server start",
		zap.String("listen", cfg.Listen),
		zap.String("host", cfg.Host),
		zap.Duration("timeout", cfg.Timeout),
	)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
