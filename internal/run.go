package internal

import (
	"bytes"
	"github.com/nimatrueway/basenc/internal/config"
	"github.com/nimatrueway/basenc/internal/io/codec"
	"github.com/nimatrueway/basenc/internal/io/core"
	"github.com/samber/mo"
	"github.com/sirupsen/logrus"
	"github.com/ztrue/tracerr"
	"io"
)

type Options struct {
	Codec   config.CodecType
	Decode  bool
	File    mo.Option[string]
	Output  mo.Option[string]
	Input   mo.Option[string]
	Key     mo.Option[string]
	Lenient bool
}

func (o Options) direction() string {
	if o.Decode {
		return "decode"
	}
	return "encode"
}

// NewCodec builds the codec named by opts, applying the base16 key and
// leniency from opts over the ones in cfg.
func NewCodec(cfg *config.Struct, opts Options) (codec.Codec, error) {
	switch opts.Codec {
	case config.Base64:
		return codec.StdBase64, nil
	case config.Base16:
		alphabet := cfg.Base16.Key
		if key, ok := opts.Key.Get(); ok {
			if len(key) >= len(codec.DefaultBase16Alphabet) {
				alphabet = key
				logrus.Debugf("use base16 key [%s]", key[:len(codec.DefaultBase16Alphabet)])
			} else {
				logrus.Warnf("ignoring base16 key [%s]: it needs at least %d characters", key, len(codec.DefaultBase16Alphabet))
			}
		}
		var b16opts []codec.Base16Option
		if opts.Lenient || cfg.Base16.Lenient {
			b16opts = append(b16opts, codec.WithLenientDecode())
		}
		b16, err := codec.NewBase16(alphabet, b16opts...)
		if err != nil {
			return nil, tracerr.Wrap(err)
		}
		return b16, nil
	default:
		return nil, tracerr.Errorf("invalid codec: %s", opts.Codec)
	}
}

// Run reads the input, applies the codec and writes the result to the
// output file or console.
func Run(cfg *config.Struct, opts Options, console io.Writer) error {
	c, err := NewCodec(cfg, opts)
	if err != nil {
		return err
	}

	source := core.Source{File: opts.File, Arg: opts.Input, MaxSize: cfg.Input.MaxSize}
	input, err := source.Read()
	if err != nil {
		return err
	}

	if b16, ok := c.(*codec.Base16); ok && opts.Decode && !b16.Lenient() {
		// files written by the encoder may end with a line break
		input = bytes.TrimRight(input, "\r\n")
	}

	logrus.Debugf("%s %s: %d bytes", c.Name(), opts.direction(), len(input))
	var result []byte
	if opts.Decode {
		result, err = c.Decode(input)
	} else {
		result, err = c.Encode(input)
	}
	if err != nil {
		return tracerr.Errorf("%s %s failed: %w", c.Name(), opts.direction(), err)
	}

	sink := core.Sink{
		Console:      console,
		Output:       opts.Output,
		ConsoleLimit: cfg.Output.ConsoleLimit,
		SpillFile:    config.ProcessString(cfg.Output.SpillFile),
	}
	dest, err := sink.Write(result)
	if err != nil {
		return err
	}
	logrus.Debugf("%s %s: wrote %d bytes to %s", c.Name(), opts.direction(), len(result), dest)
	return nil
}
