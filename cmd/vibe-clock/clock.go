package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lmple/vibe-clock/internal/bootstrap"
	clockdto "github.com/lmple/vibe-clock/internal/modules/clock/dto"
	"github.com/lmple/vibe-clock/internal/platform/timefmt"
)

func newClockCmd(opts *rootOptions) *cobra.Command {
	clock := &cobra.Command{Use: "clock", Short: "Clock in and out for time tracking"}

	clock.AddCommand(&cobra.Command{
		Use:   "start <project> <description>",
		Short: "Start the clock for a project (name or ID)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.ClockCLI.Start(ctx, args[0], args[1])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Clock started for '%s' on project '%s' at %s.\n",
					out.Description, out.ProjectName, out.StartTime.Format(timefmt.ClockLayout))
				return nil
			})
		},
	})

	clock.AddCommand(&cobra.Command{
		Use:   "stop",
		Short: "Stop the running clock and log the time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.ClockCLI.Stop(ctx)
				if err != nil {
					return err
				}
				printStopped(cmd, out)
				return nil
			})
		},
	})

	clock.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the running clock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				status, err := app.ClockCLI.Status(ctx)
				if err != nil {
					return err
				}
				if !status.Running {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No clock is running.")
					return nil
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Clock running: '%s' on project '%s' since %s (%s elapsed).\n",
					status.Description, status.ProjectName, status.StartTime.Format(timefmt.ClockLayout), timefmt.FormatDuration(status.ElapsedMin))
				return nil
			})
		},
	})

	clock.AddCommand(&cobra.Command{
		Use:   "watch",
		Short: "Live view of the running clock (s stops it, q quits)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				out, stopped, err := bootstrap.RunClockWatch(ctx, app, cmd.InOrStdin(), cmd.OutOrStdout())
				if err != nil {
					return err
				}
				if stopped {
					printStopped(cmd, out)
				}
				return nil
			})
		},
	})

	return clock
}

func printStopped(cmd *cobra.Command, out clockdto.StopOutput) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Clock stopped. Logged %s for '%s' on project '%s'.\n",
		timefmt.FormatDuration(out.DurationMin), out.Description, out.ProjectName)
}
