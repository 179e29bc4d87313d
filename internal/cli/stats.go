package cli

import (
	"fmt"
	"log"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/sadopc/dailies/internal/dates"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show today's progress, streak and the 7-day overview",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		// Read-side failures degrade to zeros rather than killing the
		// display.
		today, err := a.Stats.CompletedToday()
		if err != nil {
			log.Printf("completed-today unavailable: %v", err)
		}
		streak, err := a.Stats.CurrentStreak()
		if err != nil {
			log.Printf("streak unavailable: %v", err)
		}

		fmt.Printf("%s %d tasks completed today\n", titleStyle.Render("Today:"), today)
		fmt.Printf("%s %s\n", titleStyle.Render("Streak:"), streakStyle.Render(fmt.Sprintf("%d days", streak)))

		series, err := a.Stats.RollingSeries(7)
		if err != nil {
			log.Printf("7-day overview unavailable: %v", err)
			return nil
		}

		fmt.Println()
		fmt.Println(titleStyle.Render("Last 7 days"))
		for i, d := range series.Dates {
			label := d
			if day, err := time.ParseInLocation(dates.Layout, d, time.Local); err == nil {
				label = day.Format("Mon Jan 02")
			}
			count := fmt.Sprintf("%d", series.Counts[i])
			if series.Counts[i] > 0 {
				count = successStyle.Render(count)
			} else {
				count = errorStyle.Render(count)
			}
			fmt.Printf("  %s  %s\n", mutedStyle.Render(label), count)
		}
		return nil
	},
}

var chartDays int

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Chart completions against the expected pace",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		series, err := a.Stats.RollingSeries(chartDays)
		if err != nil {
			return err
		}

		chart := barchart.New(64, 12)
		barStyle := lipgloss.NewStyle().Foreground(colorSuccess)
		zeroStyle := lipgloss.NewStyle().Foreground(colorMuted)

		var bars []barchart.BarData
		for i, d := range series.Dates {
			label := d
			if day, err := time.ParseInLocation(dates.Layout, d, time.Local); err == nil {
				label = day.Format("02")
			}
			style := barStyle
			if series.Counts[i] == 0 {
				style = zeroStyle
			}
			bars = append(bars, barchart.BarData{
				Label: label,
				Values: []barchart.BarValue{
					{Name: d, Value: float64(series.Counts[i]), Style: style},
				},
			})
		}
		chart.PushAll(bars)
		chart.Draw()

		fmt.Println(titleStyle.Render(fmt.Sprintf("Completions, last %d days", chartDays)))
		fmt.Println(chart.View())

		actual := series.Actual[len(series.Actual)-1]
		expected := series.Expected[len(series.Expected)-1]
		pace := successStyle
		if actual < expected {
			pace = errorStyle
		}
		fmt.Printf("%s vs expected %d\n", pace.Render(fmt.Sprintf("actual %d", actual)), expected)
		return nil
	},
}

func init() {
	chartCmd.Flags().IntVar(&chartDays, "days", 30, "window size in days")

	rootCmd.AddCommand(statsCmd, chartCmd)
}
