package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/edusmart/internal/logger"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete learner progress",
	Long: `Delete all learner progress and history.

With --session only XP and level are cleared. Completed lessons, unlocked
achievements and the event history are kept.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		sessionOnly, _ := cmd.Flags().GetBool("session")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !yes {
			prompt := "This deletes every event and snapshot."
			if sessionOnly {
				prompt = fmt.Sprintf("This clears XP and level for %s.", cfg.UserID)
			}
			fmt.Fprintf(out, "%s Type 'reset' to confirm: ", prompt)
			scanner := bufio.NewScanner(cmd.InOrStdin())
			if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != "reset" {
				fmt.Fprintln(out, "Aborted.")
				return nil
			}
		}

		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		if sessionOnly {
			engine, _, err := buildEngine(cmd.Context(), cfg, st, logger.Nop())
			if err != nil {
				return err
			}
			engine.ResetSession()
			fmt.Fprintf(out, "XP and level reset for %s.\n", cfg.UserID)
			return nil
		}

		if err := st.Reset(cmd.Context()); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
		fmt.Fprintln(out, "All progress deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	resetCmd.Flags().Bool("session", false, "Only reset XP and level")
}
