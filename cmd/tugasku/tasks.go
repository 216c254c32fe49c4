package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"tugasku/internal/model"
	"tugasku/internal/tracker"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List tasks",
	RunE:  runTasks,
}

var toggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Mark a task done, or reopen it",
	Args:  cobra.ExactArgs(1),
	RunE:  runToggle,
}

var taskFilter string

func init() {
	names := make([]string, len(tracker.TaskFilters))
	for i, f := range tracker.TaskFilters {
		names[i] = string(f)
	}
	tasksCmd.Flags().StringVarP(&taskFilter, "filter", "f", string(tracker.FilterAll), "One of: "+strings.Join(names, ", "))
}

func runTasks(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := loadApp(ctx, cmd.OutOrStdout(), !verbose)
	if err != nil {
		return err
	}
	defer a.Close()

	tasks, err := a.tracker.ListTasks(ctx, tracker.ListTasksInput{Filter: tracker.TaskFilter(taskFilter)})
	if err != nil {
		return err
	}
	printTasks(cmd.OutOrStdout(), tasks)
	return nil
}

func printTasks(out io.Writer, tasks []model.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(out, subtitleStyle.Render("Tidak ada tugas."))
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tPRIORITAS\tMAPEL\tTUGAS\tDEADLINE")
	for _, t := range tasks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			shortID(t.ID), t.Status, priorityLabels[t.Priority], orDash(t.Subject), orDash(t.Title), orDash(t.Deadline))
	}
	w.Flush()
}

func runToggle(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := loadApp(ctx, cmd.OutOrStdout(), !verbose)
	if err != nil {
		return err
	}
	defer a.Close()

	id, err := resolveID(ctx, a, model.KindTask, args[0])
	if err != nil {
		return err
	}
	t, err := a.tracker.ToggleTask(ctx, id)
	if err != nil {
		return err
	}
	if t.Status == model.StatusDone {
		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Selesai: "+t.Title))
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), warningStyle.Render("Dibuka kembali: "+t.Title))
	}
	return nil
}

// resolveID accepts a full ID or an unambiguous prefix of one.
func resolveID(ctx context.Context, a *app, kind model.Kind, prefix string) (string, error) {
	var ids []string
	switch kind {
	case model.KindTask:
		tasks, err := a.tracker.ListTasks(ctx, tracker.ListTasksInput{})
		if err != nil {
			return "", err
		}
		for _, t := range tasks {
			ids = append(ids, t.ID)
		}
	case model.KindSchedule:
		schedules, err := a.tracker.ListSchedules(ctx, "")
		if err != nil {
			return "", err
		}
		for _, s := range schedules {
			ids = append(ids, s.ID)
		}
	case model.KindNote:
		for _, n := range a.tracker.ListNotes(ctx) {
			ids = append(ids, n.ID)
		}
	}
	return matchID(ids, prefix)
}

func matchID(ids []string, prefix string) (string, error) {
	var found []string
	for _, id := range ids {
		if id == prefix {
			return id, nil
		}
		if strings.HasPrefix(id, prefix) {
			found = append(found, id)
		}
	}
	switch len(found) {
	case 0:
		return "", fmt.Errorf("%w: %s", tracker.ErrNotFound, prefix)
	case 1:
		return found[0], nil
	}
	return "", fmt.Errorf("id %q is ambiguous (%d matches)", prefix, len(found))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
