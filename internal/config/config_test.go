package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/units"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	s := New()
	require.Equal(t, "0123456789ABCDEF", s.Base16.Key)
	require.False(t, s.Base16.Lenient)
	require.Equal(t, 64*units.MiB, s.Input.MaxSize)
	require.Equal(t, units.KiB, s.Output.ConsoleLimit)
	require.Equal(t, "$(mode).out", s.Output.SpillFile)
	require.Equal(t, logrus.InfoLevel, s.Log.Level)
	require.NoError(t, s.Load(""))
}

func TestLoadData(t *testing.T) {
	s := New()
	err := s.LoadData(`
[base16]
key = "zyxwvutsrqponmlk"
lenient = true

[output]
spill_file = "/tmp/$(mode).bin"

[log]
level = "debug"
file = "basenc_$(mode).log"
`)
	require.NoError(t, err)
	require.Equal(t, "zyxwvutsrqponmlk", s.Base16.Key)
	require.True(t, s.Base16.Lenient)
	require.Equal(t, "/tmp/$(mode).bin", s.Output.SpillFile)
	require.Equal(t, logrus.DebugLevel, s.Log.Level)
	require.Equal(t, "basenc_$(mode).log", s.Log.File)
	// untouched sections keep their defaults
	require.Equal(t, units.KiB, s.Output.ConsoleLimit)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[base16]\nlenient = true\n"), 0666))

	s := New()
	require.NoError(t, s.Load(path))
	require.True(t, s.Base16.Lenient)

	require.Error(t, New().Load(filepath.Join(t.TempDir(), "missing.toml")))
}

func TestValidation(t *testing.T) {
	for _, tc := range []struct {
		data    string
		problem string
	}{
		{"[base16]\nkey = \"0123\"", "base16.key"},
		{"[base16]\nkey = \"0123456789ABCDEA\"", "base16.key"},
		{"[output]\nspill_file = \"\"", "output.spill_file"},
		{"[log]\nlevel = \"loud\"", "loud"},
		{"[base16\n", ""},
	} {
		err := New().LoadData(tc.data)
		require.Error(t, err, tc.data)
		require.Contains(t, err.Error(), tc.problem)
	}

	s := New()
	s.Input.MaxSize = 0
	require.ErrorContains(t, s.Load(""), "input.max_size")
}

func TestCodecType(t *testing.T) {
	var c CodecType
	require.NoError(t, c.UnmarshalText([]byte("base64")))
	require.Equal(t, Base64, c)
	require.Error(t, c.UnmarshalText([]byte("base32")))
}

func TestProcessString(t *testing.T) {
	Mode = "base16"
	defer func() { Mode = "" }()

	require.Equal(t, "base16.out", ProcessString("$(mode).out"))
	require.Equal(t, "plain", ProcessString("plain"))

	random := ProcessString("out_$(random)")
	require.True(t, strings.HasPrefix(random, "out_"))
	require.Len(t, random, len("out_")+36)
	require.NotContains(t, ProcessString("$(time)"), "$(time)")
}

func TestCloneAndSave(t *testing.T) {
	s := New()
	clone := s.Clone()
	clone.Base16.Key = "zyxwvutsrqponmlk"
	require.Equal(t, "0123456789ABCDEF", s.Base16.Key)

	saved := s.SaveData()
	require.Contains(t, saved, "[Base16]")
	require.Contains(t, saved, `key = "0123456789ABCDEF"`)
}
