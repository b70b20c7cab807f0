package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lmple/vibe-clock/internal/bootstrap"
	"github.com/lmple/vibe-clock/internal/modules/task/dto"
	"github.com/lmple/vibe-clock/internal/platform/timefmt"
)

func newTaskCmd(opts *rootOptions) *cobra.Command {
	task := &cobra.Command{Use: "task", Short: "Manage task entries"}

	var add dto.AddInput
	addCmd := &cobra.Command{
		Use:   "add <project> <description> (--start <t> --end <t> | --duration <d>)",
		Short: "Log a task entry by hand",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := add
			input.ProjectRef, input.Description = args[0], args[1]
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.TaskCLI.Add(ctx, input)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task logged: %s for '%s' on project '%s' (ID %d).\n",
					timefmt.FormatDuration(out.DurationMin), out.Description, out.ProjectName, out.ID)
				return nil
			})
		},
	}
	addCmd.Flags().StringVar(&add.Start, "start", "", "start time (YYYY-MM-DDTHH:MM or HH:MM)")
	addCmd.Flags().StringVar(&add.End, "end", "", "end time (YYYY-MM-DDTHH:MM or HH:MM)")
	addCmd.Flags().StringVar(&add.Duration, "duration", "", "duration when no start/end is given (e.g. 90, 1h 30m)")
	task.AddCommand(addCmd)

	var description, project, start, end, duration string
	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit fields of a task entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			input := dto.EditInput{ID: id}
			flags := cmd.Flags()
			if flags.Changed("description") {
				input.Description = &description
			}
			if flags.Changed("project") {
				input.ProjectRef = &project
			}
			if flags.Changed("start") {
				input.Start = &start
			}
			if flags.Changed("end") {
				input.End = &end
			}
			if flags.Changed("duration") {
				input.Duration = &duration
			}
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				if _, err := app.TaskCLI.Edit(ctx, input); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %d updated.\n", id)
				return nil
			})
		},
	}
	editCmd.Flags().StringVar(&description, "description", "", "new description")
	editCmd.Flags().StringVar(&project, "project", "", "move to another project (name or ID)")
	editCmd.Flags().StringVar(&start, "start", "", "new start time")
	editCmd.Flags().StringVar(&end, "end", "", "new end time")
	editCmd.Flags().StringVar(&duration, "duration", "", "new duration")
	task.AddCommand(editCmd)

	var yes bool
	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				if !yes {
					entry, err := app.TaskCLI.Get(ctx, id)
					if err != nil {
						return err
					}
					question := fmt.Sprintf("Delete task '%s' (%s)?", entry.Description, timefmt.FormatDuration(entry.DurationMin))
					if !confirm(cmd, question) {
						_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
						return nil
					}
				}
				if _, err := app.TaskCLI.Delete(ctx, id); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %d deleted.\n", id)
				return nil
			})
		},
	}
	deleteCmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation")
	task.AddCommand(deleteCmd)

	return task
}
