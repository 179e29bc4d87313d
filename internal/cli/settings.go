package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sadopc/dailies/internal/stats"
)

var settingCmd = &cobra.Command{
	Use:   "setting",
	Short: "Read and write stored settings",
}

var settingSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Store.SetSetting(args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("%s %s\n", successStyle.Render("✓ set"), args[0])
		return nil
	},
}

var settingGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		v, err := a.Store.GetSetting(args[0])
		if err != nil {
			return err
		}
		fmt.Println(v)
		return nil
	},
}

var settingRmCmd = &cobra.Command{
	Use:   "rm <key>",
	Short: "Delete a setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Store.DeleteSetting(args[0]); err != nil {
			return err
		}
		fmt.Printf("%s %s\n", successStyle.Render("✓ removed"), args[0])
		return nil
	},
}

var settingListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		settings, err := a.Store.GetAllSettings()
		if err != nil {
			return err
		}
		if len(settings) == 0 {
			fmt.Println(mutedStyle.Render("No settings stored"))
			return nil
		}
		for _, s := range settings {
			fmt.Printf("%-24s %-32s %s\n", s.Key, s.Value, mutedStyle.Render(s.UpdatedAt.Local().Format("2006-01-02 15:04")))
		}
		return nil
	},
}

var expectCmd = &cobra.Command{
	Use:   "expect <tasks-per-day>",
	Short: "Set the expected completions per day used by the chart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return fmt.Errorf("expected tasks per day must be a positive number: %q", args[0])
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Store.SetSetting(stats.SettingExpectedPerDay, args[0]); err != nil {
			return err
		}
		fmt.Printf("%s expecting %d per day\n", successStyle.Render("✓"), n)
		return nil
	},
}

func init() {
	settingCmd.AddCommand(settingSetCmd, settingGetCmd, settingRmCmd, settingListCmd)
	rootCmd.AddCommand(settingCmd, expectCmd)
}
