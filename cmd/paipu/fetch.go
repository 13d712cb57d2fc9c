package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"paipuScope/internal/config"
	"paipuScope/internal/majsoul"
	"paipuScope/internal/model"
	"paipuScope/internal/protocol"
	"paipuScope/internal/server"
)

func runFetch(cmd *cobra.Command, args []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadFetch(cfgFile, cmd.Flags())
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

	source := majsoul.NewSource(majsoul.Config{
		Host:     cfg.Host,
		Username: cfg.Username,
		Password: cfg.Password,
		Timeout:  cfg.Timeout,
	}, logger)

	pipeline := server.NewPipeline(source, protocol.NewRegistry(), logger)

	blob, err := pipeline.Resolve(context.Background(), args[0])
	if err != nil {
		return err
	}

	if cfg.Raw {
		return printJSON(blob)
	}

	summary, errs, err := server.Summarize(blob)
	if err != nil {
		return err
	}
	if len(errs) > 0 {
		if cfg.CSV {
			row, err := server.WriteCSVRow(server.ErrorRow(errs))
			if err != nil {
				return err
			}
			fmt.Print(row)
			return fmt.Errorf("invalid game log")
		}
		if err := printJSON(model.ErrorResponse{
			Result:  "ERROR",
			Message: "Invalid game log.",
			Errors:  errs,
			Data:    blob,
		}); err != nil {
			return err
		}
		return fmt.Errorf("invalid game log")
	}

	if cfg.CSV {
		row, err := server.WriteCSVRow(server.SummaryRow(summary))
		if err != nil {
			return err
		}
		fmt.Print(row)
		return nil
	}
	return printJSON(summary)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
