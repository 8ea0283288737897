package config

import (
	"bytes"
	"fmt"
	"github.com/BurntSushi/toml"
	"github.com/alecthomas/units"
	"github.com/mcuadros/go-defaults"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"os"
)

// Mode is the name of the codec being run, used by $(mode) in config strings.
var Mode string

var Version string

var Config Struct

type Struct struct {
	Base16 struct {
		Key     string `default:"0123456789ABCDEF" toml:"key"`
		Lenient bool   `default:"false" toml:"lenient"`
	}
	Input struct {
		MaxSize units.Base2Bytes `default:"67108864" toml:"max_size"`
	}
	Output struct {
		ConsoleLimit units.Base2Bytes `default:"1024" toml:"console_limit"`
		SpillFile    string           `default:"$(mode).out" toml:"spill_file"`
	}
	Log struct {
		File  string       `default:"" toml:"file"`
		Level logrus.Level `default:"4" toml:"level"`
	}
}

// ---------------------------------------------------------------------------

type CodecType string

const (
	Base16 CodecType = "base16"
	Base64 CodecType = "base64"
)

var CodecTypes = []CodecType{Base16, Base64}

func (s *CodecType) UnmarshalText(text []byte) error {
	codecType := CodecType(text)
	if !lo.Contains(CodecTypes, codecType) {
		return fmt.Errorf("invalid codec: %s", text)
	}
	*s = codecType
	return nil
}

// ---------------------------------------------------------------------------

func New() *Struct {
	s := &Struct{}
	defaults.SetDefaults(s)
	return s
}

// Load reads a toml file on top of the current values. An empty path keeps them as they are.
func (s *Struct) Load(path string) error {
	if path == "" {
		return validateConfig(s)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		logrus.Errorf("error reading toml config file %s: %s", path, err.Error())
		return err
	}
	return s.LoadData(string(data))
}

func (s *Struct) LoadData(data string) error {
	_, err := toml.Decode(data, s)
	if err != nil {
		logrus.Errorf("error parsing toml config: %s", err.Error())
		return err
	}
	return validateConfig(s)
}

func (s *Struct) Clone() *Struct {
	clone := *s
	return &clone
}

func (s *Struct) SaveData() string {
	buf := bytes.NewBuffer(make([]byte, 0, 1024))
	encoder := toml.NewEncoder(buf)
	err := encoder.Encode(s)
	if err != nil {
		logrus.Errorf("error saving toml config: %s", err.Error())
		panic(err)
	}
	return buf.String()
}

func init() {
	defaults.SetDefaults(&Config)
}
