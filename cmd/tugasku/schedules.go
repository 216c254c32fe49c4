package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"tugasku/internal/model"
	"tugasku/internal/tracker"
)

var schedulesCmd = &cobra.Command{
	Use:   "schedules",
	Short: "Show the weekly lesson schedule",
	RunE:  runSchedules,
}

var deleteCmd = &cobra.Command{
	Use:       "delete <task|schedule|note> <id>",
	Short:     "Delete a task, schedule or note",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"task", "schedule", "note"},
	RunE:      runDelete,
}

var scheduleDay string

func init() {
	schedulesCmd.Flags().StringVarP(&scheduleDay, "day", "d", "", "Only show one day (senin..minggu)")
}

func runSchedules(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := loadApp(ctx, cmd.OutOrStdout(), !verbose)
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()
	if scheduleDay != "" {
		schedules, err := a.tracker.ListSchedules(ctx, scheduleDay)
		if err != nil {
			return err
		}
		printDay(out, tracker.DaySchedules{Day: scheduleDay, Schedules: schedules})
		return nil
	}
	for _, day := range a.tracker.WeeklySchedules(ctx) {
		printDay(out, day)
	}
	return nil
}

func printDay(out io.Writer, day tracker.DaySchedules) {
	fmt.Fprintln(out, headerStyle.Render(dayTitle(day.Day)))
	if len(day.Schedules) == 0 {
		fmt.Fprintln(out, subtitleStyle.Render("  Tidak ada jadwal"))
		return
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, s := range day.Schedules {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", shortID(s.ID), timeRange(s), s.Subject, orDash(s.Teacher))
	}
	w.Flush()
}

func dayTitle(day string) string {
	if day == "" {
		return ""
	}
	return strings.ToUpper(day[:1]) + day[1:]
}

func timeRange(s model.Schedule) string {
	if s.EndTime == "" {
		return s.StartTime
	}
	return s.StartTime + "-" + s.EndTime
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := loadApp(ctx, cmd.OutOrStdout(), !verbose)
	if err != nil {
		return err
	}
	defer a.Close()

	kind := model.Kind(args[0])
	switch kind {
	case model.KindTask, model.KindSchedule, model.KindNote:
	default:
		return fmt.Errorf("unknown kind %q, want task, schedule or note", args[0])
	}
	id, err := resolveID(ctx, a, kind, args[1])
	if err != nil {
		return err
	}

	switch kind {
	case model.KindTask:
		err = a.tracker.DeleteTask(ctx, id)
	case model.KindSchedule:
		err = a.tracker.DeleteSchedule(ctx, id)
	case model.KindNote:
		err = a.tracker.DeleteNote(ctx, id)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Dihapus."))
	return nil
}
