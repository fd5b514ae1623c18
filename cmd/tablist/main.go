package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kastheco/tablist/app"
	cmd2 "github.com/kastheco/tablist/cmd"
	"github.com/kastheco/tablist/config"
	sentrypkg "github.com/kastheco/tablist/internal/sentry"
	"github.com/kastheco/tablist/log"
)

var (
	version         = "0.1.0"
	containerFlag   string
	followFocusFlag bool
	rootCmd         = &cobra.Command{
		Use:   "tablist [file.html]",
		Short: "tablist - drive WAI-ARIA tabs and accordions from the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			cfg := config.LoadConfig()
			if err := sentrypkg.Init(version, cfg.IsTelemetryEnabled()); err != nil {
				// Non-fatal: sentry failure should not prevent startup
				_ = err
			}
			defer sentrypkg.Flush()
			defer sentrypkg.RecoverPanic()

			log.Initialize()
			defer log.Close()

			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			doc, source, err := cmd2.LoadDocument(path)
			if err != nil {
				log.ErrorLog.Printf("failed to load markup: %v", err)
				sentrypkg.CaptureError(err, path)
				return err
			}

			// Flags override config
			tl := cfg.TablistConfig()
			if followFocusFlag {
				tl.FollowFocus = true
			}

			if !term.IsTerminal(int(os.Stdout.Fd())) {
				log.InfoLog.Printf("stdout is not a terminal, printing the check report")
				return cmd2.WriteCheck(cmd.OutOrStdout(), doc, tl)
			}

			err = app.Run(ctx, doc, app.Options{
				Source:      source,
				ContainerID: containerFlag,
				Tablist:     tl,
				AltScreen:   cfg.UI.AltScreen,
				Mouse:       cfg.IsMouseEnabled(),
			})
			if err != nil {
				log.ErrorLog.Printf("tablist exited: %v", err)
				sentrypkg.CaptureError(err, source)
			}
			return err
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig()
			return cmd2.WriteDebug(cmd.OutOrStdout(), cfg)
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of tablist",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("tablist version %s\n", version)
		},
	}
)

func init() {
	rootCmd.Flags().StringVar(&containerFlag, "id", "",
		"id of the [role=tablist] element to drive (default: the first one)")
	rootCmd.Flags().BoolVar(&followFocusFlag, "follow-focus", false,
		"open a tab as soon as arrow keys focus it")

	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cmd2.NewCheckCmd())
	rootCmd.AddCommand(cmd2.NewSetupCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
