package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sadopc/dailies/internal/store"
)

var addNonNegotiable bool

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		typ := store.TypeGoal
		if addNonNegotiable {
			typ = store.TypeNonNegotiable
		}
		t, err := a.Tasks.Add(args[0], typ)
		if err != nil {
			return err
		}

		fmt.Printf("%s #%d %s (%s)\n", successStyle.Render("✓ added"), t.ID, t.Title, t.Type)
		return nil
	},
}

var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Complete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("task id must be a number: %q", args[0])
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		t, err := a.Tasks.Complete(id)
		if err != nil {
			return err
		}

		fmt.Printf("%s #%d %s\n", successStyle.Render("✓ done"), t.ID, t.Title)
		if t.Type == store.TypeNonNegotiable {
			fmt.Println(mutedStyle.Render("  tomorrow's instance created"))
		}
		return nil
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("task id must be a number: %q", args[0])
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Tasks.Delete(id); err != nil {
			return err
		}
		fmt.Printf("%s #%d\n", successStyle.Render("✓ deleted"), id)
		return nil
	},
}

var (
	listDone  bool
	listLimit int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List ongoing tasks (or completed with --done)",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if listDone {
			tasks, err := a.Stats.RecentCompleted(listLimit)
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Println(mutedStyle.Render("No completed tasks"))
				return nil
			}
			for _, t := range tasks {
				end := ""
				if t.EndDate != nil {
					end = *t.EndDate
				}
				fmt.Printf("#%-4d %-40s %s %s\n", t.ID, t.Title, mutedStyle.Render(string(t.Type)), end)
			}
			return nil
		}

		tasks, err := a.Tasks.Ongoing()
		if err != nil {
			return err
		}
		if len(tasks) == 0 {
			fmt.Println(mutedStyle.Render("No ongoing tasks"))
			return nil
		}
		for _, t := range tasks {
			fmt.Printf("#%-4d %-40s %s since %s\n", t.ID, t.Title, mutedStyle.Render(string(t.Type)), t.StartDate)
		}
		return nil
	},
}

func init() {
	addCmd.Flags().BoolVarP(&addNonNegotiable, "non-negotiable", "n", false, "recurring task: completing it creates tomorrow's instance")
	listCmd.Flags().BoolVar(&listDone, "done", false, "show completed tasks instead")
	listCmd.Flags().IntVar(&listLimit, "limit", 5, "max completed tasks to show (0 = all)")

	rootCmd.AddCommand(addCmd, doneCmd, rmCmd, listCmd)
}
