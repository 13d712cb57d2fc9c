package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	root := &cobra.Command{
		Use:          "paipu",
		Short:        "Majsoul game log summarizer",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the summary API over HTTP",
		RunE:  runServe,
	}

	serveCmd.Flags().String("host", "", "majsoul service host URL")
	serveCmd.Flags().String("username", "", "majsoul account username")
	serveCmd.Flags().String("password", "", "majsoul account password")
	serveCmd.Flags().String("listen", ":8080", "HTTP listen address")
	serveCmd.Flags().Duration("timeout", 30*time.Second, "per-request fetch timeout")
	serveCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(serveCmd)

	fetchCmd := &cobra.Command{
		Use:   "fetch <uuid>",
		Short: "Fetch one game log and print its summary",
		Args:  cobra.ExactArgs(1),
		RunE:  runFetch,
	}

	fetchCmd.Flags().String("host", "", "majsoul service host URL")
	fetchCmd.Flags().String("username", "", "majsoul account username")
	fetchCmd.Flags().String("password", "", "majsoul account password")
	fetchCmd.Flags().Duration("timeout", 30*time.Second, "fetch timeout")
	fetchCmd.Flags().Bool("csv", false, "print the summary as a CSV row")
	fetchCmd.Flags().Bool("raw", false, "print the full decoded blob")
	fetchCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(fetchCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
