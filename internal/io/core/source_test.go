package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/units"
	"github.com/samber/mo"
	"github.com/stretchr/testify/require"
)

func TestSourceArgument(t *testing.T) {
	data, err := Source{Arg: mo.Some("Man")}.Read()
	require.NoError(t, err)
	require.Equal(t, "Man", string(data))

	_, err = Source{}.Read()
	require.ErrorContains(t, err, "no input")

	_, err = Source{Arg: mo.Some("")}.Read()
	require.Error(t, err)
}

func TestSourceFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.bin")
	require.NoError(t, os.WriteFile(path, []byte{0x00, 0x01, 0xff}, 0666))

	// file wins over the argument
	data, err := Source{File: mo.Some(path), Arg: mo.Some("ignored"), MaxSize: units.KiB}.Read()
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x01, 0xff}, data)

	data, err = Source{File: mo.Some(path)}.Read()
	require.NoError(t, err)
	require.Len(t, data, 3)
}

func TestSourceFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Source{File: mo.Some(filepath.Join(dir, "missing"))}.Read()
	require.ErrorIs(t, err, os.ErrNotExist)

	empty := filepath.Join(dir, "empty")
	require.NoError(t, os.WriteFile(empty, nil, 0666))
	_, err = Source{File: mo.Some(empty)}.Read()
	require.ErrorContains(t, err, "empty")

	large := filepath.Join(dir, "large")
	require.NoError(t, os.WriteFile(large, make([]byte, 2048), 0666))
	_, err = Source{File: mo.Some(large), MaxSize: units.KiB}.Read()
	require.ErrorContains(t, err, "larger than the 1KiB limit")
}
