package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/syntaxpresso/core-sub005/internal/model"
)

// NewRootCommand builds the process's command tree: a root carrying the
// shared --cwd/--verbose flags (§6), one subcommand per host language
// (today: java), and under each, one subcommand per §4.5 command.
// Grounded on demo/cmd/main.go's root-command-plus-subcommands shape.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "syntaxpresso",
		Short:         "Structural query and transformation engine for Java source",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("cwd", "", "containment root for all reads and writes (required)")
	root.PersistentFlags().Bool("verbose", false, "print a unified diff of any write to stderr")

	root.AddCommand(newJavaCommand())
	return root
}

// Execute runs root, converting any panic that escapes a command's RunE
// into an IOFailure envelope on stdout and exit code 1 (§7's panic
// propagation policy applies at this outermost boundary).
func Execute(root *cobra.Command) int {
	exitCode := 1
	func() {
		defer func() {
			if r := recover(); r != nil {
				exitCode = emit(model.FromError(model.IOFailure("internal error", fmt.Errorf("%v", r))))
			}
		}()
		if err := root.Execute(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		exitCode = lastExitCode
	}()
	return exitCode
}

// lastExitCode is set by each leaf command's RunE via setExitCode, since
// cobra's Execute itself has no return value carrying it.
var lastExitCode = 1

func setExitCode(code int) {
	lastExitCode = code
}
