package core

import (
	"github.com/alecthomas/units"
	"github.com/samber/mo"
	"github.com/sirupsen/logrus"
	"github.com/ztrue/tracerr"
	"io"
	"os"
)

// Sink persists a codec result. Results go to Output when set, otherwise to
// Console as one line, unless they are longer than ConsoleLimit in which
// case they spill to SpillFile.
type Sink struct {
	Console      io.Writer
	Output       mo.Option[string]
	ConsoleLimit units.Base2Bytes
	SpillFile    string
}

// Write returns the name of the destination the data ended up in.
func (s Sink) Write(data []byte) (string, error) {
	if len(data) == 0 {
		return "", tracerr.New("refusing to write an empty result")
	}

	output, toFile := s.Output.Get()
	if !toFile && s.ConsoleLimit > 0 && int64(len(data)) > int64(s.ConsoleLimit) {
		output, toFile = s.SpillFile, true
		logrus.Infof("output buff [%d] larger than %s, writing to file [%s]", len(data), s.ConsoleLimit, output)
	}

	if toFile {
		return output, writeFile(output, data)
	}

	w := NewWriterLogInterceptor(s.Console)
	line := make([]byte, 0, len(data)+1)
	line = append(append(line, data...), '\n')
	if _, err := w.Write(line); err != nil {
		return "", tracerr.Wrap(err)
	}
	return DetermineWriterName(s.Console), nil
}

func writeFile(path string, data []byte) error {
	logrus.Debugf("output file name [%s]", path)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		return tracerr.Wrap(err)
	}

	if _, err = NewWriterLogInterceptor(file).Write(data); err != nil {
		_ = file.Close()
		return tracerr.Errorf("failed to write buff [%d] to file [%s]: %w", len(data), path, err)
	}
	return tracerr.Wrap(file.Close())
}
