package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordbreak/oracle"
)

// NewCheckCommand creates the check command, which looks words up in the
// configured dictionary.
func NewCheckCommand(root *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check WORD...",
		Short: "Report whether each word is in the dictionary",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, arg := range args {
				word := oracle.Fold(arg)
				if err := writeCheck(w, root.Config.Format, word, word != "" && root.oracle.IsWord(word)); err != nil {
					return WrapExitError(ExitCommandError, "write output", err)
				}
			}
			return nil
		},
	}
}
