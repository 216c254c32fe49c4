package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"tugasku/internal/chat"
	"tugasku/internal/model"
	"tugasku/internal/preview"
	"tugasku/internal/tracker"
	"tugasku/pkg/datemath"
	"tugasku/pkg/log"
)

var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Send a message, or start an interactive chat when no message is given",
	RunE:  runChat,
}

var dryRun bool

func init() {
	chatCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Only show how the message is classified and parsed; nothing is saved")
}

func runChat(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := loadApp(ctx, cmd.OutOrStdout(), !verbose)
	if err != nil {
		return err
	}
	defer a.Close()

	s := &chatSession{app: a, editor: huhEditor{}, out: cmd.OutOrStdout(), dryRun: dryRun}
	if len(args) > 0 {
		return s.handle(ctx, strings.Join(args, " "))
	}
	return s.loop(ctx, cmd.InOrStdin())
}

type action string

const (
	actionSave       action = "save"
	actionSaveAsNote action = "note"
	actionCancel     action = "cancel"
)

// previewEditor lets the user review a session and pick what to do with it.
type previewEditor interface {
	Edit(sess preview.Session) (action, preview.Form, error)
}

type chatSession struct {
	app    *app
	editor previewEditor
	out    io.Writer
	dryRun bool
}

func (s *chatSession) loop(ctx context.Context, in io.Reader) error {
	fmt.Fprintln(s.out, titleStyle.Render("Tugasku"))
	fmt.Fprintln(s.out, subtitleStyle.Render("Ketik pesan, \"bantuan\" untuk contoh, atau \"keluar\" untuk berhenti."))

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "keluar", "exit", "quit":
			return nil
		}
		if err := s.handle(ctx, line); err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// handle processes one message. User-facing failures are printed, not returned.
func (s *chatSession) handle(ctx context.Context, message string) error {
	if s.dryRun {
		return s.classify(ctx, message)
	}

	out, err := s.app.chat.Process(ctx, chat.ProcessInput{Message: message})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		s.say(errorStyle.Render(chat.ReplyError(err)))
		return nil
	}
	s.say(out.Reply)
	if out.Session == nil {
		return nil
	}
	return s.review(log.WithSessionID(ctx, out.Session.ID), *out.Session)
}

func (s *chatSession) classify(ctx context.Context, message string) error {
	out, err := s.app.chat.Classify(ctx, chat.ClassifyInput{Message: message})
	if err != nil {
		s.say(errorStyle.Render(chat.ReplyError(err)))
		return nil
	}
	route := fmt.Sprintf("intent: %s (%s", out.Route.Intent, out.Route.Reasoning)
	if out.Route.Keyword != "" {
		route += fmt.Sprintf(", %q", out.Route.Keyword)
	}
	fmt.Fprintln(s.out, subtitleStyle.Render(route+")"))
	s.say(out.Reply)
	return nil
}

func (s *chatSession) review(ctx context.Context, sess preview.Session) error {
	for {
		act, form, err := s.editor.Edit(sess)
		if err != nil {
			return err
		}

		var res preview.ConfirmOutput
		switch act {
		case actionCancel:
			if err := s.app.previews.Cancel(ctx, sess.ID); err != nil {
				return err
			}
			s.say(subtitleStyle.Render("Dibatalkan."))
			return nil
		case actionSaveAsNote:
			res, err = s.app.previews.SaveAsNote(ctx, sess.ID)
		default:
			res, err = s.app.previews.Confirm(ctx, preview.ConfirmInput{ID: sess.ID, Form: form})
		}

		switch {
		case err == nil:
			s.say(chat.ReplySaved(res.Record))
			return nil
		case errors.Is(err, preview.ErrInvalidField):
			s.say(errorStyle.Render(err.Error()))
			sess.Form = form
		case errors.Is(err, tracker.ErrStorageWrite):
			// Already reported by the notifier; the session is still open.
		default:
			return err
		}
	}
}

func (s *chatSession) say(text string) {
	fmt.Fprintln(s.out, botStyle.Render(text))
}

// huhEditor shows the preview as a form in the terminal.
type huhEditor struct{}

func (huhEditor) Edit(sess preview.Session) (action, preview.Form, error) {
	form := sess.Form
	choice := string(actionSave)

	actions := []huh.Option[string]{huh.NewOption("Simpan", string(actionSave))}
	if sess.CanSaveAsNote() {
		actions = append(actions, huh.NewOption("Simpan sebagai catatan", string(actionSaveAsNote)))
	}
	actions = append(actions, huh.NewOption("Batal", string(actionCancel)))

	err := huh.NewForm(
		huh.NewGroup(formFields(sess.Result.Kind(), &form)...).
			Title("Pratinjau & Edit").
			Description(sess.Result.OriginalMessage),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Aksi").
				Options(actions...).
				Value(&choice),
		),
	).WithShowHelp(true).WithShowErrors(true).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return actionCancel, form, nil
	}
	if err != nil {
		return "", form, err
	}
	return action(choice), form, nil
}

func formFields(kind model.Kind, f *preview.Form) []huh.Field {
	switch kind {
	case model.KindSchedule:
		days := make([]huh.Option[string], 0, len(datemath.IndonesianWeekdays))
		for _, d := range datemath.IndonesianWeekdays {
			days = append(days, huh.NewOption(d, d))
		}
		return []huh.Field{
			huh.NewInput().Title("Mata pelajaran").Value(&f.Subject),
			huh.NewSelect[string]().Title("Hari").Options(days...).Value(&f.Day),
			huh.NewInput().Title("Jam mulai").Placeholder("HH:MM").Value(&f.StartTime),
			huh.NewInput().Title("Jam selesai").Placeholder("HH:MM").Value(&f.EndTime),
			huh.NewInput().Title("Guru").Value(&f.Teacher),
			huh.NewInput().Title("Catatan").Value(&f.Notes),
		}
	case model.KindNote:
		return []huh.Field{
			huh.NewInput().Title("Judul").Value(&f.Title),
			huh.NewText().Title("Isi").Value(&f.Content),
		}
	}

	priorities := []huh.Option[string]{
		huh.NewOption(priorityLabels[model.PriorityHigh], string(model.PriorityHigh)),
		huh.NewOption(priorityLabels[model.PriorityMedium], string(model.PriorityMedium)),
		huh.NewOption(priorityLabels[model.PriorityLow], string(model.PriorityLow)),
	}
	return []huh.Field{
		huh.NewInput().Title("Judul").Value(&f.Title),
		huh.NewInput().Title("Mata pelajaran").Value(&f.Subject),
		huh.NewInput().Title("Nama tugas").Value(&f.Name),
		huh.NewInput().Title("Halaman").Value(&f.Page),
		huh.NewInput().Title("Deadline").Placeholder("YYYY-MM-DD, besok, jumat...").Value(&f.Deadline),
		huh.NewInput().Title("Bawa").Value(&f.Notes),
		huh.NewInput().Title("Peringatan").Value(&f.Warning),
		huh.NewSelect[string]().Title("Prioritas").Options(priorities...).Value(&f.Priority),
	}
}
