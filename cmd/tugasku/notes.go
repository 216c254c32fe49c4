package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"tugasku/internal/checklist"
	"tugasku/internal/model"
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "List notes, newest first",
	RunE:  runNotes,
}

var checkCmd = &cobra.Command{
	Use:   "check <note-id> <item>",
	Short: "Tick off checklist lines of a note",
	Long:  `Marks every "- [ ]" line of the note whose text contains <item>. Use --undo to clear them again.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runCheck,
}

var checkUndo bool

func init() {
	checkCmd.Flags().BoolVar(&checkUndo, "undo", false, "Uncheck instead of check")
	notesCmd.AddCommand(checkCmd)
}

func runNotes(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := loadApp(ctx, cmd.OutOrStdout(), !verbose)
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()
	notes := a.tracker.ListNotes(ctx)
	if len(notes) == 0 {
		fmt.Fprintln(out, subtitleStyle.Render("Belum ada catatan."))
		return nil
	}
	for _, n := range notes {
		printNote(out, n)
	}
	return nil
}

func printNote(out io.Writer, n model.Note) {
	meta := shortID(n.ID) + " · " + n.UpdatedAt.Format("02 Jan 2006 15:04")
	if p := checklist.Summarize(n.Content); p.Total > 0 {
		meta += fmt.Sprintf(" · %d/%d", p.Completed, p.Total)
		if p.Done() {
			meta += " selesai"
		}
	}
	fmt.Fprintf(out, "%s %s\n", headerStyle.Render(n.Title), subtitleStyle.Render(meta))
	fmt.Fprintf(out, "  %s\n\n", strings.ReplaceAll(n.Content, "\n", "\n  "))
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := loadApp(ctx, cmd.OutOrStdout(), !verbose)
	if err != nil {
		return err
	}
	defer a.Close()

	id, err := resolveID(ctx, a, model.KindNote, args[0])
	if err != nil {
		return err
	}
	n, err := a.tracker.CheckNoteItem(ctx, id, args[1], !checkUndo)
	if err != nil {
		return err
	}
	printNote(cmd.OutOrStdout(), n)
	return nil
}
