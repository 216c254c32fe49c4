package main

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"tugasku/internal/model"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change settings",
	RunE:  runSettings,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all tasks, schedules and notes",
	RunE:  runClear,
}

var (
	settingsTheme string
	clearYes      bool
)

func init() {
	settingsCmd.Flags().StringVar(&settingsTheme, "theme", "", "Colour theme: light or dark")
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "Do not ask for confirmation")
}

func runSettings(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := loadApp(ctx, cmd.OutOrStdout(), !verbose)
	if err != nil {
		return err
	}
	defer a.Close()

	s := a.tracker.Settings(ctx)
	if settingsTheme != "" {
		s.Theme = model.Theme(settingsTheme)
		if s, err = a.tracker.UpdateSettings(ctx, s); err != nil {
			return err
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "theme: %s\n", s.Theme)
	return nil
}

func runClear(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := loadApp(ctx, cmd.OutOrStdout(), !verbose)
	if err != nil {
		return err
	}
	defer a.Close()

	if !clearYes {
		confirmed := false
		err := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("Hapus semua data?").
				Description("Tugas, jadwal, dan catatan akan dihapus permanen.").
				Affirmative("Hapus").
				Negative("Batal").
				Value(&confirmed),
		)).Run()
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Fprintln(cmd.OutOrStdout(), subtitleStyle.Render("Dibatalkan."))
			return nil
		}
	}

	if err := a.tracker.ClearAll(ctx); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Semua data dihapus."))
	return nil
}
