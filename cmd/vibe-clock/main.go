package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lmple/vibe-clock/internal/bootstrap"
	"github.com/lmple/vibe-clock/internal/platform/config"
	apperrors "github.com/lmple/vibe-clock/internal/platform/errors"
	"github.com/lmple/vibe-clock/internal/platform/timefmt"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, bootstrap.Deps{})
	stop()
	os.Exit(code)
}

// run executes one command line and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, deps bootstrap.Deps) int {
	opts := &rootOptions{deps: deps}
	root := newRootCmd(opts)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err != nil && !opts.started {
		// Nothing was opened yet, so the command line itself was wrong.
		err = apperrors.Usage(err)
	}
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return apperrors.ExitCode(err)
}

type rootOptions struct {
	configFile string
	dbPath     string
	verbose    bool
	deps       bootstrap.Deps
	started    bool
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	root := &cobra.Command{
		Use:           config.AppName,
		Short:         "A daily task journal with time tracking",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.dbPath, "db", "", "journal database path (env VIBE_CLOCK_DB)")
	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default $XDG_CONFIG_HOME/vibe-clock/config.yaml)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging on stderr")

	root.AddCommand(newProjectCmd(opts))
	root.AddCommand(newClockCmd(opts))
	root.AddCommand(newTaskCmd(opts))
	root.AddCommand(newJournalCmd(opts))
	root.AddCommand(newReportCmd(opts))
	return root
}

// loadApp opens the journal for cmd and checks for a timer left running by an
// earlier invocation. The clock commands report the timer themselves, so the
// warning line is printed only outside them.
func loadApp(cmd *cobra.Command, opts *rootOptions) (*bootstrap.App, error) {
	opts.started = true
	cfg, err := config.Load(config.Options{
		ConfigFile: opts.configFile,
		DBPath:     opts.dbPath,
		Verbose:    opts.verbose,
	})
	if err != nil {
		return nil, err
	}
	app, err := bootstrap.New(cmd.Context(), cfg, opts.deps)
	if err != nil {
		return nil, err
	}
	status, err := app.ClockCLI.Recover(cmd.Context())
	if err != nil {
		_ = app.Close()
		return nil, err
	}
	if status.Running && !isClockCmd(cmd) {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Clock still running for '%s' on project '%s' since %s (%s elapsed).\n",
			status.Description, status.ProjectName, status.StartTime.Format(timefmt.ClockLayout), timefmt.FormatDuration(status.ElapsedMin))
	}
	return app, nil
}

// withApp runs fn against a freshly opened journal and closes it afterwards.
func withApp(cmd *cobra.Command, opts *rootOptions, fn func(context.Context, *bootstrap.App) error) (err error) {
	app, err := loadApp(cmd, opts)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := app.Close(); err == nil {
			err = closeErr
		}
	}()
	return fn(cmd.Context(), app)
}

func isClockCmd(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "clock" && c.Parent() != nil && !c.Parent().HasParent() {
			return true
		}
	}
	return false
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil {
		return 0, apperrors.Usage(fmt.Errorf("invalid ID %q", arg))
	}
	return id, nil
}

// confirm asks question on stderr and reads one line of stdin. Only "y" or
// "Y" confirms.
func confirm(cmd *cobra.Command, question string) bool {
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s [y/N] ", question)
	var answer string
	if _, err := fmt.Fscanln(cmd.InOrStdin(), &answer); err != nil {
		return false
	}
	answer = strings.TrimSpace(answer)
	return answer == "y" || answer == "Y"
}
