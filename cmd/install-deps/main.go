// cmd/install-deps/main.go

// Package main implements the webchain dependency checker CLI.
// It reconciles the pdtm listing against the tools the recon chain needs
// and, after confirmation, installs or updates them.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"webchain/cmd/install-deps/installer"
	"webchain/internal/core/domain"
	"webchain/internal/core/ports"
	"webchain/internal/platform/config"
	"webchain/internal/platform/errors"
	"webchain/internal/platform/logx"
	"webchain/internal/platform/ui"
	"webchain/internal/runner"
	"webchain/internal/toolcheck"
)

const (
	version = "1.0.0"
	appName = "webchain dependency checker"
)

const (
	exitOK          = 0
	exitError       = 1
	exitInterrupted = 130
)

// Options holds CLI configuration.
type Options struct {
	SettingsPath string
	Manager      string
	CheckOnly    bool
	DryRun       bool
	Yes          bool
	Verbose      bool
	NoColor      bool
	ShowVersion  bool
	ShowHelp     bool
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, err := parseFlags(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Try: install-deps -h for help")
		return exitError
	}
	if opts.ShowHelp {
		printUsage(os.Stdout)
		return exitOK
	}
	if opts.ShowVersion {
		fmt.Printf("%s v%s\n", appName, version)
		return exitOK
	}

	if opts.NoColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		ui.DisableStyling()
	}

	level := logx.LevelFromEnv(logx.LevelWarn)
	if opts.Verbose {
		level = logx.LevelDebug
	}
	logger := logx.NewWithWriter(os.Stderr, level)

	settings := config.DefaultConfig().Settings
	if opts.SettingsPath != "" {
		if err := config.LoadSettings(opts.SettingsPath, &settings); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return exitError
		}
	}
	if opts.Manager != "" {
		settings.Tools.Manager = opts.Manager
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	presenter := ui.NewPTermPresenter()
	defer presenter.Close()

	err = check(ctx, opts, settings, presenter, logger)
	switch {
	case errors.IsInterrupted(err):
		presenter.Warning("Interrupted by user. Exiting.")
		return exitInterrupted
	case err != nil:
		logger.Err(err, "phase", "check")
		presenter.Error(err.Error())
		return exitError
	}
	return exitOK
}

// check inspects the tool inventory and, unless CheckOnly, remediates it.
// Any tool left missing or failed makes the run fail.
func check(ctx context.Context, opts Options, settings config.Settings, presenter ui.Presenter, logger logx.Logger) error {
	cmdRunner := runner.New(logger, presenter)

	var confirmer ports.Confirmer = ui.NewLinePrompter(os.Stdin, os.Stdout)
	if opts.Yes {
		confirmer = autoConfirm{}
	}

	checker := toolcheck.NewChecker(cmdRunner, confirmer, presenter, logger, settings.Tools.Required)
	checker.Manager = settings.Tools.Manager

	plan, err := checker.Inspect()
	if err != nil {
		if errors.IsToolNotFound(err) {
			presenter.Info(installer.ManagerHint(checker.Manager).String())
		}
		return err
	}

	for _, tool := range plan.Missing {
		presenter.Info(installer.UnlistedHint(tool, checker.Manager).String())
	}

	if opts.CheckOnly {
		if !plan.Empty() {
			items := make([]string, len(plan.Actions))
			for i, a := range plan.Actions {
				items[i] = a.String()
			}
			presenter.Queue(items)
			return errors.Errorf("%d tool(s) need attention", len(plan.Actions))
		}
		return checkPath(checker.Required, presenter)
	}

	report, err := toolcheck.NewRemediator(cmdRunner, confirmer, presenter, logger).Apply(ctx, plan, opts.DryRun)
	if err != nil {
		return err
	}
	for _, a := range report.Failed {
		presenter.Info(installer.ActionHint(a).String())
	}

	switch {
	case len(report.Failed) > 0:
		return errors.Errorf("%d remediation command(s) failed", len(report.Failed))
	case report.Declined:
		return errors.New("remediation declined")
	case opts.DryRun:
		return nil
	}
	return checkPath(checker.Required, presenter)
}

// checkPath warns when the installed tools are not reachable from PATH.
func checkPath(tools []string, presenter ui.Presenter) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return errors.Wrap(err, "resolve home directory")
	}

	report := installer.CheckPath(tools, home, installer.SystemPath(), nil)
	if report.OK() {
		presenter.Success("All required tools are reachable from PATH.")
		return nil
	}

	// con el directorio ya en PATH, el binario falta de verdad
	hint := installer.PathHint(report.BinDir, report.NotFound)
	if report.BinDirInPath {
		hint.Solutions = []string{"Reinstall with: pdtm -i " + report.NotFound[0]}
	}
	presenter.Warning(hint.String())
	return errors.Wrapf(errors.ErrToolNotFound, "%d tool(s) not in PATH", len(report.NotFound))
}

// autoConfirm answers yes without reading stdin (--yes).
type autoConfirm struct{}

func (autoConfirm) Confirm(ctx context.Context, _ string) (bool, error) {
	if ctx.Err() != nil {
		return false, errors.Wrap(errors.ErrInterrupted, "confirm")
	}
	return true, nil
}

// parseFlags parses command-line flags.
func parseFlags(args []string) (Options, error) {
	var opts Options

	fs := pflag.NewFlagSet("install-deps", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&opts.SettingsPath, "settings", "", "Path to a webchain settings YAML (required tools)")
	fs.StringVar(&opts.Manager, "manager", "", "Tool manager binary (default pdtm)")
	fs.BoolVar(&opts.CheckOnly, "check", false, "Only inspect, never install or update")
	fs.BoolVar(&opts.DryRun, "dry-run", false, "Print the remediation commands without running them")
	fs.BoolVarP(&opts.Yes, "yes", "y", false, "Do not ask for confirmation")
	fs.BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable verbose logging")
	fs.BoolVar(&opts.NoColor, "no-color", false, "Disable colored output")
	fs.BoolVar(&opts.ShowVersion, "version", false, "Show version and exit")
	fs.BoolVarP(&opts.ShowHelp, "help", "h", false, "Show help")

	if err := fs.Parse(args); err != nil {
		return opts, errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	if fs.NArg() > 0 {
		return opts, errors.Wrapf(errors.ErrInvalidInput, "unexpected argument %q", fs.Arg(0))
	}
	if opts.CheckOnly && opts.DryRun {
		return opts, errors.Wrap(errors.ErrInvalidInput, "--check and --dry-run are mutually exclusive")
	}
	return opts, nil
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "%s v%s\n\n", appName, version)
	fmt.Fprintln(w, "Usage: install-deps [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Checks the recon tools ("+strings.Join(domain.RequiredTools, ", ")+") through pdtm")
	fmt.Fprintln(w, "and installs or updates what is missing or outdated.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  --check             Only inspect; exit 1 if anything needs attention")
	fmt.Fprintln(w, "  --dry-run           Print the remediation commands without running them")
	fmt.Fprintln(w, "  -y, --yes           Do not ask for confirmation")
	fmt.Fprintln(w, "  --manager NAME      Tool manager binary (default pdtm)")
	fmt.Fprintln(w, "  --settings PATH     webchain settings YAML with tools.required")
	fmt.Fprintln(w, "  -v, --verbose       Verbose logging")
	fmt.Fprintln(w, "  --no-color          Disable colored output")
	fmt.Fprintln(w, "  --version           Show version")
	fmt.Fprintln(w, "  -h, --help          Show this help")
}

