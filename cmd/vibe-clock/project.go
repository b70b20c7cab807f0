package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lmple/vibe-clock/internal/bootstrap"
	"github.com/lmple/vibe-clock/internal/ui/render"
)

func newProjectCmd(opts *rootOptions) *cobra.Command {
	project := &cobra.Command{Use: "project", Short: "Manage projects"}

	project.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Create a new project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.ProjectCLI.Add(ctx, args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Project '%s' created (ID %d).\n", out.Name, out.ID)
				return nil
			})
		},
	})

	project.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				projects, err := app.ProjectCLI.List(ctx)
				if err != nil {
					return err
				}
				render.NewPrinter(cmd.OutOrStdout()).Projects(projects)
				return nil
			})
		},
	})

	var newName string
	edit := &cobra.Command{
		Use:   "edit <id> --name <new-name>",
		Short: "Rename a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.ProjectCLI.Rename(ctx, id, newName)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Project renamed to '%s'.\n", out.Name)
				return nil
			})
		},
	}
	edit.Flags().StringVar(&newName, "name", "", "new project name")
	_ = edit.MarkFlagRequired("name")
	project.AddCommand(edit)

	var yes bool
	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a project and all of its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.ProjectCLI.Delete(ctx, id, yes)
				if err != nil {
					return err
				}
				if out.NeedsConfirmation {
					question := fmt.Sprintf("Project '%s' has %d tasks. Delete project and all tasks?", out.Name, out.EntryCount)
					if !confirm(cmd, question) {
						_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
						return nil
					}
					if out, err = app.ProjectCLI.Delete(ctx, id, true); err != nil {
						return err
					}
				}
				if out.ClockDiscarded {
					_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Running clock on this project was discarded.")
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Project '%s' deleted.\n", out.Name)
				return nil
			})
		},
	}
	deleteCmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation")
	project.AddCommand(deleteCmd)

	return project
}
