package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordbreak/internal/config"
)

// execute runs the root command with args and stdin, returning stdout and the error.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "wordbreak", cmd.Use)

	for _, name := range []string{"segment", "check"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, "command %s should exist", name)
		assert.Equal(t, name, sub.Name())
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	dict := cmd.PersistentFlags().Lookup("dict")
	require.NotNil(t, dict)
	assert.Equal(t, "d", dict.Shorthand)
	assert.Equal(t, config.DictionaryCommon, dict.DefValue)

	format := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, "text", format.DefValue)

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
}

func TestSegment_Text(t *testing.T) {
	out, err := execute(t, "", "segment", "--dict", "demo", "hereisyourgift", "helloworldfromjavascript")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "segment_text", []byte(out))
}

func TestSegment_JSONWithFailure(t *testing.T) {
	out, err := execute(t, "", "segment", "--dict", "demo", "--format", "json", "hereisyourgift", "hellothere")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSomeUnsegmented)
	assert.Equal(t, ExitUnsegmented, GetExitCode(err))

	g := goldie.New(t)
	g.Assert(t, "segment_json", []byte(out))
}

func TestSegment_Stdin(t *testing.T) {
	out, err := execute(t, "thequestionisnotwhy\n\n  theworld  \n", "segment")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "segment_stdin", []byte(out))
}

func TestSegment_DictionaryFile(t *testing.T) {
	out, err := execute(t, "", "segment", "-d", filepath.Join("testdata", "dict.yaml"), "foobarbaz")
	require.NoError(t, err)
	assert.Equal(t, "FOOBARBAZ: FOOBAR BAZ\n", out)
}

func TestSegment_MissingDictionary(t *testing.T) {
	_, err := execute(t, "", "segment", "-d", filepath.Join("testdata", "nope.txt"), "x")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestSegment_ConfigFile(t *testing.T) {
	cfg := filepath.Join("testdata", "config.yaml")

	out, err := execute(t, "", "segment", "--config", cfg, "hereisyourgift")
	require.NoError(t, err)
	assert.Equal(t, `{"input":"HEREISYOURGIFT","words":["HERE","IS","YOUR","GIFT"],"found":true}`+"\n", out)

	// flags win over the file
	out, err = execute(t, "", "segment", "--config", cfg, "--format", "text", "hereisyourgift")
	require.NoError(t, err)
	assert.Equal(t, "HEREISYOURGIFT: HERE IS YOUR GIFT\n", out)
}

func TestSegment_InvalidFormat(t *testing.T) {
	_, err := execute(t, "", "segment", "--format", "xml", "abc")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidFormat)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestCheck(t *testing.T) {
	out, err := execute(t, "", "check", "--dict", "demo", "Hello", "xyz")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "check_text", []byte(out))
}

func TestCheck_JSON(t *testing.T) {
	out, err := execute(t, "", "check", "--format", "json", "the")
	require.NoError(t, err)
	assert.Equal(t, `{"word":"THE","known":true}`+"\n", out)
}

func TestCheck_RequiresArgs(t *testing.T) {
	_, err := execute(t, "", "check")
	assert.Error(t, err)
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitCommandError, GetExitCode(assert.AnError))
	assert.Equal(t, ExitUnsegmented, GetExitCode(WrapExitError(ExitUnsegmented, "x", ErrSomeUnsegmented)))
}
