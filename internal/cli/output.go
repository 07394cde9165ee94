package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/wordbreak/internal/config"
	"github.com/katalvlaran/wordbreak/segment"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // all inputs segmented
	ExitUnsegmented  = 1 // at least one input has no segmentation
	ExitCommandError = 2 // bad flags, config or dictionary
)

// ErrSomeUnsegmented is returned by the segment command when any input could
// not be split into words.
var ErrSomeUnsegmented = errors.New("some inputs have no segmentation")

// ExitError carries an exit code alongside an error.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError wraps err with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from err: 0 for nil, the ExitError code
// when present, ExitCommandError otherwise.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCommandError
}

// segmentRecord is the JSON form of one segmentation.
type segmentRecord struct {
	Input string   `json:"input"`
	Words []string `json:"words"`
	Found bool     `json:"found"`
}

// checkRecord is the JSON form of one dictionary lookup.
type checkRecord struct {
	Word  string `json:"word"`
	Known bool   `json:"known"`
}

// writeSegment prints one result in the chosen format.
func writeSegment(w io.Writer, format string, res *segment.Result) error {
	if format == config.FormatJSON {
		return json.NewEncoder(w).Encode(segmentRecord{Input: res.Input, Words: res.Words, Found: res.Found})
	}
	if !res.Found {
		_, err := fmt.Fprintf(w, "%s: no segmentation\n", res.Input)
		return err
	}
	_, err := fmt.Fprintf(w, "%s: %s\n", res.Input, res.Phrase())
	return err
}

// writeCheck prints one lookup in the chosen format.
func writeCheck(w io.Writer, format, word string, known bool) error {
	if format == config.FormatJSON {
		return json.NewEncoder(w).Encode(checkRecord{Word: word, Known: known})
	}
	_, err := fmt.Fprintf(w, "%s: %t\n", word, known)
	return err
}
