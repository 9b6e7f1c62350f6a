package cmd

import (
	"context"

	"hotel-indexer/core/storage"
	"hotel-indexer/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the database, object storage and fullnode",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, true, true)
	},
}

// schemaCmd represents the integrity schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check and fix the SQL schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false, false)
	},
}

// storageCmd represents the integrity storage command
var storageCmd = &cobra.Command{
	Use:   "storage",
	Short: "Check and fix the image bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true, false)
	},
}

// ledgerCmd represents the integrity ledger command
var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Check fullnode reachability",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(schemaCmd, storageCmd, ledgerCmd)

	schemaCmd.Flags().BoolVar(&fixFlag, "fix", false, "Migrate missing tables and columns")
	storageCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create a missing bucket")
}

func runIntegrityChecks(ctx context.Context, runSchema, runStorage, runLedger bool) error {
	d, err := loadDeps(ctx)
	if err != nil {
		return err
	}
	defer d.close()
	logg := d.logger

	opts := integrity.Options{
		DB:     d.db,
		Bucket: d.cfg.Storage.Bucket,
		Region: d.cfg.Storage.Region,
		Ledger: d.ledger,
		Filter: d.filter(),
		Logger: logg,
	}
	if client, err := storage.NewClient(d.cfg.Storage); err != nil {
		logg.Warn("Object storage unavailable", zap.Error(err))
	} else {
		opts.Storage = client
	}
	svc := integrity.NewService(opts)

	if runSchema {
		logg.Info("Checking database schema...")
		report, err := svc.CheckSchema()
		switch {
		case err != nil:
			logg.Warn("Schema check skipped", zap.Error(err))
		case report.Matched:
			logg.Info("Schema matches the models.")
		default:
			for table, tbl := range report.Tables {
				if tbl.Status != "ok" {
					logg.Warn("Schema mismatch", zap.String("table", table), zap.String("status", tbl.Status),
						zap.Strings("missing_columns", tbl.MissingColumns))
				}
			}
			if fixFlag {
				if err := svc.FixSchema(ctx); err != nil {
					return err
				}
				logg.Info("Schema migrated.")
			} else {
				logg.Info("Run with --fix to migrate the schema.")
			}
		}
	}

	if runStorage {
		logg.Info("Checking image bucket...")
		report, err := svc.CheckStorage(ctx)
		switch {
		case err != nil:
			logg.Error("Storage check failed", zap.Error(err))
		case !report.Exists:
			logg.Warn("Image bucket missing", zap.String("bucket", report.Bucket))
			if fixFlag {
				if err := svc.FixStorage(ctx); err != nil {
					return err
				}
			} else {
				logg.Info("Run with --fix to create the bucket.")
			}
		case !report.Writable:
			logg.Warn("Image bucket is read-only", zap.String("bucket", report.Bucket))
		default:
			logg.Info("Image bucket is writable.", zap.String("bucket", report.Bucket))
		}
	}

	if runLedger {
		logg.Info("Checking fullnode...")
		report := svc.CheckLedger(ctx)
		if !report.Reachable {
			logg.Error("Fullnode unreachable", zap.String("error", report.Error))
		} else {
			fields := []zap.Field{}
			if report.Latest != nil {
				fields = append(fields, zap.String("latest_event", report.Latest.Key()))
			}
			logg.Info("Fullnode reachable.", fields...)
		}
	}

	return nil
}
