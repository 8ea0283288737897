package core

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/units"
	"github.com/samber/mo"
	"github.com/stretchr/testify/require"
)

func TestSinkConsole(t *testing.T) {
	console := &bytes.Buffer{}
	sink := Sink{Console: console, ConsoleLimit: units.KiB, SpillFile: filepath.Join(t.TempDir(), "spill")}

	dest, err := sink.Write([]byte("TWFu"))
	require.NoError(t, err)
	require.Equal(t, "*bytes.Buffer", dest)
	require.Equal(t, "TWFu\n", console.String())
	require.NoFileExists(t, sink.SpillFile)
}

func TestSinkOutputFile(t *testing.T) {
	console := &bytes.Buffer{}
	output := filepath.Join(t.TempDir(), "out.bin")
	require.NoError(t, os.WriteFile(output, []byte("previous content that is longer"), 0666))

	sink := Sink{Console: console, Output: mo.Some(output)}
	dest, err := sink.Write([]byte{0x00, 'M'})
	require.NoError(t, err)
	require.Equal(t, output, dest)
	require.Empty(t, console.String())

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 'M'}, data, "file is written verbatim and truncated")
}

func TestSinkSpill(t *testing.T) {
	console := &bytes.Buffer{}
	spill := filepath.Join(t.TempDir(), "base64.out")
	sink := Sink{Console: console, ConsoleLimit: 8, SpillFile: spill}

	_, err := sink.Write([]byte("12345678"))
	require.NoError(t, err)
	require.Equal(t, "12345678\n", console.String())
	require.NoFileExists(t, spill)

	dest, err := sink.Write([]byte("123456789"))
	require.NoError(t, err)
	require.Equal(t, spill, dest)
	require.FileExists(t, spill)
	require.Equal(t, "12345678\n", console.String())

	// a zero limit never spills
	console.Reset()
	sink.ConsoleLimit = 0
	_, err = sink.Write([]byte(strings.Repeat("x", 4096)))
	require.NoError(t, err)
	require.Len(t, console.String(), 4097)
}

func TestSinkErrors(t *testing.T) {
	_, err := Sink{Console: &bytes.Buffer{}}.Write(nil)
	require.ErrorContains(t, err, "empty")

	_, err = Sink{Output: mo.Some(filepath.Join(t.TempDir(), "missing", "out"))}.Write([]byte("x"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDetermineNames(t *testing.T) {
	require.Equal(t, "stdout", DetermineWriterName(NewWriterLogInterceptor(os.Stdout)))
	require.Equal(t, "stdin", DetermineReaderName(NewReaderLogInterceptor(os.Stdin)))
	require.Equal(t, "*strings.Reader", DetermineReaderName(strings.NewReader("")))
}
