// Copyright (c) 2026 Travelist. All rights reserved.
// Author: platform@travelist.ru

/*
Package cli implements tourctl, the operator command line of the catalogue.

Commands:

  - export csv|xlsx: write a tour selection as a spreadsheet.
  - migrate up: apply pending schema migrations.

Storage is opened lazily by each command so that help and flag errors never
need a database.
*/
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/travelist/tourcat/internal/listing"
	"github.com/travelist/tourcat/internal/platform/config"
	"github.com/travelist/tourcat/internal/platform/migration"
	pgstore "github.com/travelist/tourcat/internal/platform/postgres"
)

// Deps are the collaborators of the commands.
type Deps struct {
	// OpenService connects to storage. The returned func releases it.
	OpenService func(ctx context.Context) (*listing.Service, func(), error)

	// Migrate applies pending migrations.
	Migrate func() error

	// Locale is the default vocabulary of exported texts.
	Locale string
}

// Execute runs tourctl with production dependencies and exits non-zero on failure.
func Execute() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil)).With(slog.String("app", "tourctl"))

	deps := Deps{
		OpenService: func(ctx context.Context) (*listing.Service, func(), error) {
			cfg, err := config.Load()
			if err != nil {
				return nil, nil, err
			}

			pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, logger, nil)
			if err != nil {
				return nil, nil, err
			}

			return listing.NewService(listing.NewPostgresRepository(pool), logger), pool.Close, nil
		},
		Migrate: func() error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, logger)
		},
		Locale: os.Getenv("LOCALE"),
	}

	if err := NewRootCmd(deps).Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree.
func NewRootCmd(deps Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "tourctl",
		Short:        "tourctl: Travelist tour catalogue operations",
		SilenceUsage: true,
	}

	cmd.AddCommand(exportCmd(deps), migrateCmd(deps))
	return cmd
}

func migrateCmd(deps Deps) *cobra.Command {
	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the catalogue schema",
	}

	migrate.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return deps.Migrate()
		},
	})

	return migrate
}
