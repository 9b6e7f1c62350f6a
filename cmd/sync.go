package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hotel-indexer/core/indexer"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var onceFlag bool

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Follow the contract event stream",
	Long: `Runs the sync loop without the HTTP API. With --once a single cycle is run and
the command exits non-zero if it fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		d, err := loadDeps(ctx)
		if err != nil {
			return err
		}
		defer d.close()

		runner, err := d.newRunner()
		if err != nil {
			return err
		}

		if !onceFlag {
			return indexer.NewScheduler(runner, d.cfg.Indexer, d.logger).Run(ctx)
		}

		res, err := runner.RunCycle(ctx)
		if err != nil {
			return fmt.Errorf("sync cycle failed: %w", err)
		}

		fields := []zap.Field{
			zap.Int("fetched", res.Fetched),
			zap.Int("applied", res.Applied),
			zap.Bool("has_more", res.HasMore),
		}
		if res.Cursor != nil {
			fields = append(fields, zap.String("cursor", res.Cursor.Key()))
		}
		d.logger.Info("Single cycle finished", fields...)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(syncCmd)
	syncCmd.Flags().BoolVar(&onceFlag, "once", false, "Run a single cycle and exit")
}
