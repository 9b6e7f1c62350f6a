package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var yesFlag bool

// cursorCmd represents the cursor command
var cursorCmd = &cobra.Command{
	Use:   "cursor",
	Short: "Inspect or reset the persisted event cursor",
}

// cursorShowCmd represents the cursor show command
var cursorShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the persisted cursor",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeps(cmd.Context())
		if err != nil {
			return err
		}
		defer d.close()

		c, err := d.cursors.Load(cmd.Context(), d.cfg.Indexer.Key())
		if err != nil {
			return err
		}
		if c == nil {
			fmt.Println("No cursor saved; the next cycle starts from the first event.")
			return nil
		}

		data, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal cursor: %w", err)
		}
		fmt.Println(string(data))
		return nil
	},
}

// cursorResetCmd represents the cursor reset command
var cursorResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the persisted cursor so the next cycle replays the whole stream",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !yesFlag {
			return errors.New("refusing to reset the cursor without --yes")
		}

		d, err := loadDeps(cmd.Context())
		if err != nil {
			return err
		}
		defer d.close()

		key := d.cfg.Indexer.Key()
		if err := d.cursors.Reset(cmd.Context(), key); err != nil {
			return err
		}
		d.logger.Info("Cursor reset", zap.String("stream", key))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(cursorCmd)
	cursorCmd.AddCommand(cursorShowCmd, cursorResetCmd)
	cursorResetCmd.Flags().BoolVar(&yesFlag, "yes", false, "Confirm the reset")
}
