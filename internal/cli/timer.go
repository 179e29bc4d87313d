package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sadopc/dailies/internal/export"
)

var timerCmd = &cobra.Command{
	Use:   "timer",
	Short: "Track time against a task label",
}

var timerRunCmd = &cobra.Command{
	Use:   "run <label>",
	Short: "Run a timer until interrupted, then record the session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Tracker.Start(args[0]); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Printf("timing %s — ctrl-c to stop\n", titleStyle.Render(args[0]))

		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
	loop:
		for {
			select {
			case <-ctx.Done():
				break loop
			case <-ticker.C:
				fmt.Printf("\r  %s ", export.FormatDuration(int64(a.Tracker.Elapsed()/time.Second)))
			}
		}
		// The display tick is cancelled; the store write still completes.
		stop()

		entry, err := a.Tracker.Stop()
		if err != nil {
			return err
		}
		if entry == nil {
			return nil
		}
		fmt.Printf("\n%s %s for %s\n", successStyle.Render("✓ recorded"), entry.TaskName, export.FormatDuration(entry.Seconds))
		return nil
	},
}

var totalsTop int

var timerTotalsCmd = &cobra.Command{
	Use:   "totals",
	Short: "Show tracked time per task label",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		totals, err := a.Tracker.TopTotals(totalsTop)
		if err != nil {
			return err
		}
		if len(totals) == 0 {
			fmt.Println(mutedStyle.Render("No time tracked yet"))
			return nil
		}
		for _, t := range totals {
			fmt.Printf("%-30s %s %s\n", t.TaskName, export.FormatDuration(t.TotalSeconds),
				mutedStyle.Render(fmt.Sprintf("(%d sessions)", t.EntryCount)))
		}
		return nil
	},
}

var timerClearCmd = &cobra.Command{
	Use:   "clear <label>",
	Short: "Delete all sessions recorded under a label",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		n, err := a.Tracker.DeleteEntriesForTask(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s %d sessions for %q\n", successStyle.Render("✓ removed"), n, args[0])
		return nil
	},
}

var exportCSVCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Export all sessions to a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		entries, err := a.Store.ListEntries()
		if err != nil {
			return err
		}
		if err := export.ToCSV(entries, args[0]); err != nil {
			return err
		}
		fmt.Printf("%s %d sessions to %s\n", successStyle.Render("✓ exported"), len(entries), args[0])
		return nil
	},
}

func init() {
	timerTotalsCmd.Flags().IntVar(&totalsTop, "top", 0, "only show the N largest labels (0 = all)")

	timerCmd.AddCommand(timerRunCmd, timerTotalsCmd, timerClearCmd, exportCSVCmd)
	rootCmd.AddCommand(timerCmd)
}
