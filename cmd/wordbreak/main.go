// Command wordbreak splits text without spaces into dictionary words.
package main

import (
	"os"

	"github.com/katalvlaran/wordbreak/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	os.Exit(cli.GetExitCode(err))
}
