package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lmple/vibe-clock/internal/bootstrap"
	apperrors "github.com/lmple/vibe-clock/internal/platform/errors"
	"github.com/lmple/vibe-clock/internal/ui/pdfexport"
	"github.com/lmple/vibe-clock/internal/ui/render"
)

func newJournalCmd(opts *rootOptions) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "journal [date]",
		Short: "Show the tasks of one day (YYYY-MM-DD, today, yesterday; default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := render.ValidateFormat(format); err != nil {
				return apperrors.Usage(err)
			}
			date := ""
			if len(args) == 1 {
				date = args[0]
			}
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				journal, err := app.JournalCLI.Journal(ctx, date)
				if err != nil {
					return err
				}
				printer := render.NewPrinter(cmd.OutOrStdout())
				if format == render.FormatYAML {
					return printer.YAML(journal)
				}
				printer.Journal(journal)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&format, "format", render.FormatText, "output format: text|yaml")
	return cmd
}

func newReportCmd(opts *rootOptions) *cobra.Command {
	var from, to, format, pdfPath string
	cmd := &cobra.Command{
		Use:   "report --from <date> --to <date>",
		Short: "Summarise tasks per project over a date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := render.ValidateFormat(format); err != nil {
				return apperrors.Usage(err)
			}
			if pdfPath != "" && cmd.Flags().Changed("format") {
				return apperrors.Usage(fmt.Errorf("--format and --pdf cannot be combined"))
			}
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				report, err := app.JournalCLI.Report(ctx, from, to)
				if err != nil {
					return err
				}
				if pdfPath != "" {
					if err := pdfexport.Write(pdfPath, report); err != nil {
						return err
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s.\n", pdfPath)
					return nil
				}
				printer := render.NewPrinter(cmd.OutOrStdout())
				if format == render.FormatYAML {
					return printer.YAML(report)
				}
				printer.Report(report)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "first day, inclusive (YYYY-MM-DD, today, yesterday)")
	cmd.Flags().StringVar(&to, "to", "", "last day, inclusive (YYYY-MM-DD, today, yesterday)")
	cmd.Flags().StringVar(&format, "format", render.FormatText, "output format: text|yaml")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "write the report as PDF to this path instead of printing it")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
