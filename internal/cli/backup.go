package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sadopc/dailies/internal/backup"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Mirror the dataset to the backup store",
}

var backupRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Write one backup now",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		m, err := a.Manager()
		if err != nil {
			return err
		}
		_, name, err := m.Backup(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("%s %s\n", successStyle.Render("✓ backed up"), name)
		return nil
	},
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored backups, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		m, err := a.Manager()
		if err != nil {
			return err
		}
		files, err := m.List(cmd.Context())
		if err != nil {
			return err
		}
		if len(files) == 0 {
			fmt.Println(mutedStyle.Render("No backups yet"))
			return nil
		}
		for _, f := range files {
			fmt.Printf("%-38s %s %6d bytes  %s\n", f.ID, f.ModifiedTime.Local().Format("2006-01-02 15:04"), f.Size, mutedStyle.Render(f.Name))
		}
		return nil
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <file-id>",
	Short: "Replace the dataset with a stored backup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		m, err := a.Manager()
		if err != nil {
			return err
		}
		if err := m.Restore(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println(successStyle.Render("✓ restored"))
		return nil
	},
}

var backupDeleteCmd = &cobra.Command{
	Use:   "rm <file-id>",
	Short: "Delete a stored backup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		m, err := a.Manager()
		if err != nil {
			return err
		}
		if err := m.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println(successStyle.Render("✓ deleted"))
		return nil
	},
}

var backupAutoCmd = &cobra.Command{
	Use:   "auto",
	Short: "Run periodic backups until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		m, err := a.Manager()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Printf("backing up every %s — ctrl-c to stop\n", a.Cfg.AutoBackupInterval)
		backup.NewScheduler(m, a.Cfg.AutoBackupInterval).Run(ctx)
		return nil
	},
}

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every task and time entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			return fmt.Errorf("refusing to wipe the dataset without --yes")
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Engine.Reset(); err != nil {
			return err
		}
		fmt.Println(successStyle.Render("✓ dataset cleared"))
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "confirm the wipe")

	backupCmd.AddCommand(backupRunCmd, backupListCmd, backupRestoreCmd, backupDeleteCmd, backupAutoCmd)
	rootCmd.AddCommand(backupCmd, resetCmd)
}
