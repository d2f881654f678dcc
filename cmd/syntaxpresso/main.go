// Command syntaxpresso is the process entry point: build the cobra command
// tree, execute it against os.Args, and exit with the code §6 requires (0
// iff the emitted envelope's succeed is true, 1 otherwise).
package main

import (
	"os"

	"github.com/syntaxpresso/core-sub005/internal/cli"
)

func main() {
	root := cli.NewRootCommand()
	os.Exit(cli.Execute(root))
}
