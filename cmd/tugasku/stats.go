package main

import (
	"fmt"
	"io"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"tugasku/internal/model"
	"tugasku/internal/tracker"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show task and schedule statistics",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := loadApp(ctx, cmd.OutOrStdout(), !verbose)
	if err != nil {
		return err
	}
	defer a.Close()

	printStats(cmd.OutOrStdout(), a.tracker.Stats(ctx))
	return nil
}

func printStats(out io.Writer, s tracker.Stats) {
	fmt.Fprintln(out, titleStyle.Render("Statistik"))
	fmt.Fprintf(out, "Tugas: %d total, %s, %s, %s\n",
		s.Total,
		successStyle.Render(fmt.Sprintf("%d selesai", s.Completed)),
		warningStyle.Render(fmt.Sprintf("%d belum", s.Pending)),
		errorStyle.Render(fmt.Sprintf("%d terlambat", s.Overdue)))
	fmt.Fprintf(out, "Jadwal: %d, Catatan: %d\n\n", s.Schedules, s.Notes)

	if s.Total > 0 {
		fmt.Fprintln(out, headerStyle.Render("Tugas per prioritas"))
		fmt.Fprintln(out, priorityChart(s.ByPriority))
		fmt.Fprintln(out)
	}
	if s.Schedules > 0 {
		fmt.Fprintln(out, headerStyle.Render("Jadwal per hari"))
		fmt.Fprintln(out, dayChart(s.SchedulesPerDay))
	}
}

func priorityChart(counts map[model.Priority]int) string {
	var bars []barchart.BarData
	for _, p := range []model.Priority{model.PriorityHigh, model.PriorityMedium, model.PriorityLow} {
		bars = append(bars, barchart.BarData{
			Label: priorityLabels[p],
			Values: []barchart.BarValue{{
				Name:  string(p),
				Value: float64(counts[p]),
				Style: priorityStyle(p),
			}},
		})
	}
	return drawBars(bars, 36, 8)
}

func dayChart(counts map[string]int) string {
	style := lipgloss.NewStyle().Foreground(colorPrimary)
	var bars []barchart.BarData
	for _, day := range model.WorkingDays {
		bars = append(bars, barchart.BarData{
			Label:  day[:3],
			Values: []barchart.BarValue{{Name: day, Value: float64(counts[day]), Style: style}},
		})
	}
	return drawBars(bars, 48, 8)
}

func drawBars(bars []barchart.BarData, width, height int) string {
	chart := barchart.New(width, height)
	chart.PushAll(bars)
	chart.Draw()
	return chart.View()
}
