// Command migrate applies the SQL files under migrations/ with the atlas CLI.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"facility-booking/internal/pkg/config"
	"facility-booking/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/kelseyhightower/envconfig"
)

func main() {
	dir := flag.String("dir", "migrations", "directory holding the migration files and atlas.sum")
	dryRun := flag.Bool("dry-run", false, "print pending migrations without applying them")
	bin := flag.String("atlas", "atlas", "path to the atlas binary")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	var dbCfg config.DBConfig
	if err := envconfig.Process("", &dbCfg); err != nil {
		logger.Error("failed to load database config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := run(ctx, logger, *bin, *dir, dbCfg, *dryRun); err != nil {
		logger.Error("migration failed", "error", err, "stack", errs.ExtractStackLines(err, 5))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, bin, dir string, dbCfg config.DBConfig, dryRun bool) error {
	workdir, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(os.DirFS(dir)))
	if err != nil {
		return errs.Wrap(err, "failed to prepare atlas working directory")
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), bin)
	if err != nil {
		return errs.Wrap(err, "failed to create atlas client")
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    dbCfg.BuildDSN(),
		DryRun: dryRun,
	})
	if err != nil {
		return errs.Wrap(err, "failed to apply migrations")
	}

	for _, f := range res.Applied {
		logger.Info("migration applied", "name", f.Name, "version", f.Version, "dry_run", dryRun)
	}
	logger.Info("database is up to date",
		"database", dbCfg.DBName,
		"current", res.Current,
		"target", res.Target,
		"applied", len(res.Applied))
	return nil
}
