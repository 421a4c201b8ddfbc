// Package cli implements the emptrack command-line interface. Running the
// root command with no subcommand starts the interactive menu.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/emptrack/internal/paths"
	"github.com/mesh-intelligence/emptrack/pkg/emptrack"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	verbose   bool
}

var flags rootFlags

// NewRootCmd creates the top-level "emptrack" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	flags = rootFlags{}

	root := &cobra.Command{
		Use:   "emptrack",
		Short: "Manage departments, roles, and employees",
		Long: `emptrack keeps departments, roles, and employees in a SQL database and
offers an interactive menu to view, add, update, and delete them.

Run without a subcommand to start the menu.`,
		Version:       emptrack.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runMenu,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "data directory for the SQLite file (default: .emptrack-db)")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log startup progress to stderr")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newBudgetCmd())

	return root
}

// Execute runs the root command and exits with the matching code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "emptrack:", err)
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

// codedError carries the process exit code for an error.
type codedError struct {
	code int
	err  error
}

func (e *codedError) Error() string { return e.err.Error() }
func (e *codedError) Unwrap() error { return e.err }

// sysError marks err as a system failure (store unreachable, schema or seed
// failure, unwritable directories).
func sysError(err error) error {
	return &codedError{code: exitSysError, err: err}
}

// exitCode maps an error to a process exit code. Unmarked errors are user
// errors (bad flags, arguments, or configuration values).
func exitCode(err error) int {
	var ce *codedError
	if errors.As(err, &ce) {
		return ce.code
	}
	return exitUserError
}

// resolveConfigDir returns the config directory from flag, env, or default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flags.configDir)
}
