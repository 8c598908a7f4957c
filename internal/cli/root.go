package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.0.0")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization with
// values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// versionTemplate renders the --version output shared by both binaries.
func versionTemplate(name string) string {
	return fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", name, version, commit, date)
}

// newRootContext builds a context cancelled on SIGINT/SIGTERM, matching the
// solver's convention of checking for an abort between strongly connected
// components rather than mid-batch.
func newRootContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// withPersistentLogging attaches the --verbose flag and the logger setup
// shared by both root commands.
func withPersistentLogging(root *cobra.Command, verbose *bool) {
	root.PersistentFlags().BoolVarP(verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level := charmlog.InfoLevel
		if *verbose {
			level = charmlog.DebugLevel
		}
		ctx := withLogger(cmd.Context(), newLogger(os.Stdout, level))
		cmd.SetContext(ctx)
	}
}

// ExecuteSolve runs the fvssolve CLI and returns an error if the command
// fails. On SIGINT/SIGTERM the process exits with code 130, matching the
// source's signal-handling convention.
func ExecuteSolve() error {
	var verbose bool

	root := newSolveCmd()
	root.Use = "fvssolve <input> <output>"
	root.Version = version
	root.SilenceUsage = true
	withPersistentLogging(root, &verbose)
	root.SetVersionTemplate(versionTemplate("fvssolve"))

	root.AddCommand(newInspectCmd())
	root.AddCommand(newCompletionCmd("fvssolve"))

	ctx, cancel := newRootContext()
	defer cancel()

	err := root.ExecuteContext(ctx)
	if ctx.Err() != nil {
		os.Exit(130)
	}
	return err
}

// ExecuteVerify runs the fvsverify CLI and returns an error if the command
// fails.
func ExecuteVerify() error {
	var verbose bool

	root := newVerifyCmd()
	root.Use = "fvsverify <input> <output>"
	root.Version = version
	root.SilenceUsage = true
	withPersistentLogging(root, &verbose)
	root.SetVersionTemplate(versionTemplate("fvsverify"))

	root.AddCommand(newCompletionCmd("fvsverify"))

	ctx, cancel := newRootContext()
	defer cancel()

	return root.ExecuteContext(ctx)
}
