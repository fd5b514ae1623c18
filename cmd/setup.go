package cmd

import (
	"errors"
	"fmt"

	"charm.land/huh/v2"
	"github.com/spf13/cobra"

	"github.com/kastheco/tablist/config"
)

// setupAnswers holds the form values while the wizard runs.
type setupAnswers struct {
	EndSkipsDisabled bool
	FollowFocus      bool
	AltScreen        bool
	Mouse            bool
	Telemetry        bool
}

func answersFrom(cfg *config.Config) setupAnswers {
	return setupAnswers{
		EndSkipsDisabled: cfg.Navigation.EndSkipsDisabled == nil || *cfg.Navigation.EndSkipsDisabled,
		FollowFocus:      cfg.Navigation.FollowFocus,
		AltScreen:        cfg.UI.AltScreen,
		Mouse:            cfg.IsMouseEnabled(),
		Telemetry:        cfg.IsTelemetryEnabled(),
	}
}

func (a setupAnswers) apply(cfg *config.Config) {
	endSkips, mouse, telemetry := a.EndSkipsDisabled, a.Mouse, a.Telemetry
	cfg.Navigation.EndSkipsDisabled = &endSkips
	cfg.Navigation.FollowFocus = a.FollowFocus
	cfg.UI.AltScreen = a.AltScreen
	cfg.UI.Mouse = &mouse
	cfg.TelemetryEnabled = &telemetry
}

func setupForm(a *setupAnswers) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Navigation").
				Description("How arrow keys and End behave in every tablist."),
			huh.NewConfirm().
				Title("End skips disabled tabs").
				Description("When off, End lands on the last tab even if it is disabled.").
				Value(&a.EndSkipsDisabled),
			huh.NewConfirm().
				Title("Open tabs as focus moves").
				Value(&a.FollowFocus),
		),
		huh.NewGroup(
			huh.NewNote().
				Title("Terminal"),
			huh.NewConfirm().
				Title("Use the alternate screen").
				Value(&a.AltScreen),
			huh.NewConfirm().
				Title("Enable mouse clicks").
				Value(&a.Mouse),
			huh.NewConfirm().
				Title("Send crash reports").
				Value(&a.Telemetry),
		),
	)
}

// NewSetupCmd returns the `tablist setup` command.
func NewSetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "setup",
		Aliases: []string{"init"},
		Short:   "Interactively write ~/.config/tablist/config.toml",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig()
			answers := answersFrom(cfg)
			if err := setupForm(&answers).Run(); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					fmt.Fprintln(cmd.OutOrStdout(), "setup cancelled, config unchanged")
					return nil
				}
				return err
			}
			answers.apply(cfg)
			if err := config.SaveConfig(cfg); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "config saved")
			return nil
		},
	}
}
