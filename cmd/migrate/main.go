package main

import (
	"context"
	"log/slog"
	"os"

	"multimart/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// Applies pending SQL migrations from db/migrations against the configured
// database. Requires the atlas CLI on PATH.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	workdir, err := atlasexec.NewWorkingDir(
		atlasexec.WithMigrations(os.DirFS("db/migrations")),
	)
	if err != nil {
		slog.Error("failed to prepare migration workdir", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := workdir.Close(); err != nil {
			slog.Warn("failed to clean up migration workdir", "error", err)
		}
	}()

	client, err := atlasexec.NewClient(workdir.Path(), "atlas")
	if err != nil {
		slog.Error("failed to create atlas client", "error", err)
		os.Exit(1)
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL: cfg.DB.BuildDSN(),
	})
	if err != nil {
		slog.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}

	slog.Info("migrations applied", "applied", len(res.Applied), "current", res.Current, "target", res.Target)
}
