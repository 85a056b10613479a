// Package main is the entry point of superglue.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ipreg/superglue/internal/config"
	"github.com/ipreg/superglue/internal/creds"
	"github.com/ipreg/superglue/internal/failure"
	"github.com/ipreg/superglue/internal/monitor"
	"github.com/ipreg/superglue/internal/notifier"
	"github.com/ipreg/superglue/internal/pp"
	"github.com/ipreg/superglue/internal/signal"
	"github.com/ipreg/superglue/internal/updater"
)

// Version is the version of superglue that will be shown in the output.
// This is to be overwritten by the linker argument -X main.Version=version.
var Version string //nolint:gochecknoglobals

// errReported means the error has already been printed.
var errReported = errors.New("failed")

func formatName() string {
	if Version == "" {
		return "superglue"
	}
	return fmt.Sprintf("superglue (%s)", Version)
}

func main() {
	os.Exit(realMain(context.Background(), os.Args[1:], os.Stdout, time.Now))
}

func realMain(ctx context.Context, args []string, out io.Writer, now func() time.Time) int {
	root := newRootCommand(out, now)
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(out)

	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errReported):
		return 1
	default:
		// Errors from parsing the command line come before the printer is set up.
		ppfmt := pp.New(out)
		ppfmt.Errorf(pp.EmojiUserError, "%v", err)
		ppfmt.Infof(pp.EmojiHint, "Run %q for usage", root.Name()+" --help")
		return 1
	}
}

func reportError(ppfmt pp.PP, c *config.Config, err error) {
	if failure.IsUserError(err) {
		ppfmt.Errorf(pp.EmojiUserError, "%v", err)
		return
	}

	ppfmt.Errorf(pp.EmojiError, "%v", err)
	if errors.Is(err, context.DeadlineExceeded) {
		ppfmt.Hintf(pp.HintRegistryTimeouts,
			"If the registry is slow, raise REGISTRY_TIMEOUT (currently %v)", c.RegistryTimeout)
	}
}

// update reads the input and the credentials, and then runs the pipeline.
func update(ctx context.Context, ppfmt pp.PP, c *config.Config, opts *config.Options,
	now func() time.Time,
) (updater.Result, error) {
	var none updater.Result

	desired, err := updater.ReadInput(ppfmt, c, opts)
	if err != nil {
		return none, err
	}

	cr, err := creds.Load(ppfmt, opts.CredsPath)
	if err != nil {
		return none, err
	}

	g, ok := c.NewGateway(ppfmt, cr, now)
	if !ok {
		return none, failure.Usagef("cannot use the registry at %q", c.RegistryURL)
	}
	ppfmt.Infof(pp.EmojiRegistry, "Using %s", g.Describe())

	return updater.Run(ctx, ppfmt, c, opts, g, desired, now)
}

// run is one whole run of a subcommand. Every error is printed here.
func run(ctx context.Context, out io.Writer, opts *config.Options, now func() time.Time) error {
	ppfmt, ok := config.SetupPP(out, opts.LogLevel)
	if !ok {
		return errReported
	}
	if !ppfmt.IsShowing(pp.Info) {
		ppfmt.Noticef(pp.EmojiMute, "Quiet mode enabled")
	}

	// Show the name and the version
	ppfmt.Noticef(pp.EmojiStar, formatName())

	// Registry operations stop on SIGINT and SIGTERM; monitors and notifiers
	// still get the last word.
	ctxWithSignals, stop := signal.NotifyContext(ctx, ppfmt)
	defer stop()

	c := config.Default()
	if !c.ReadEnv(ppfmt) {
		monitor.ExitStatusAll(ctx, ppfmt, c.Monitors, 1, "Config errors")
		ppfmt.Noticef(pp.EmojiBye, "Bye!")
		return errReported
	}
	c.Print(ppfmt)

	monitor.StartAll(ctx, ppfmt, c.Monitors, formatName())

	result, err := update(ctxWithSignals, ppfmt, c, opts, now)
	if err != nil {
		reportError(ppfmt, c, err)
		monitor.FailureAll(ctx, ppfmt, c.Monitors, err.Error())
		notifier.SendAll(ctx, ppfmt, c.Notifiers, updater.FailureMessage(opts, err))
		ppfmt.Noticef(pp.EmojiBye, "Bye!")
		return errReported
	}

	monitor.SuccessAll(ctx, ppfmt, c.Monitors, result.MonitorMessage(opts))
	ppfmt.Noticef(pp.EmojiBye, "Bye!")
	return nil
}
