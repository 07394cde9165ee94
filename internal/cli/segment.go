package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/wordbreak/segment"
)

// NewSegmentCommand creates the segment command.
func NewSegmentCommand(root *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "segment [text...]",
		Short: "Split each argument, or each stdin line, into words",
		Example: `  wordbreak segment hereisyourgift
  echo helloworldfromjavascript | wordbreak segment --dict demo`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := args
			if len(inputs) == 0 {
				var err error
				if inputs, err = readLines(cmd.InOrStdin()); err != nil {
					return WrapExitError(ExitCommandError, "read stdin", err)
				}
			}

			return runSegment(cmd.OutOrStdout(), root, inputs)
		},
	}
}

// runSegment segments every input and writes one record per input.
func runSegment(w io.Writer, root *RootOptions, inputs []string) error {
	missed := 0
	for _, in := range inputs {
		res, err := segment.Segment(in, root.oracle, segment.WithLogger(root.logger))
		if err != nil {
			return WrapExitError(ExitCommandError, "segment", err)
		}
		if !res.Found {
			missed++
		}
		if err = writeSegment(w, root.Config.Format, res); err != nil {
			return WrapExitError(ExitCommandError, "write output", err)
		}
	}
	if missed > 0 {
		root.logger.Debug("unsegmented inputs", zap.Int("count", missed), zap.Int("total", len(inputs)))
		return WrapExitError(ExitUnsegmented, fmt.Sprintf("%d of %d", missed, len(inputs)), ErrSomeUnsegmented)
	}

	return nil
}

// readLines returns the non-blank, trimmed lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}

	return lines, sc.Err()
}
