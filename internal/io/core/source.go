package core

import (
	"github.com/alecthomas/units"
	"github.com/samber/mo"
	"github.com/sirupsen/logrus"
	"github.com/ztrue/tracerr"
	"io"
	"os"
)

// Source is where the codec input comes from: a whole file when File is
// set, otherwise the command line argument.
type Source struct {
	File    mo.Option[string]
	Arg     mo.Option[string]
	MaxSize units.Base2Bytes
}

func (s Source) Read() ([]byte, error) {
	if path, ok := s.File.Get(); ok {
		return s.readFile(path)
	}
	arg, ok := s.Arg.Get()
	if !ok || arg == "" {
		return nil, tracerr.New("no input given, pass a string argument or --file")
	}
	logrus.Debugf("got string %q size [%d]", arg, len(arg))
	return []byte(arg), nil
}

func (s Source) readFile(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	if s.MaxSize > 0 && stat.Size() > int64(s.MaxSize) {
		return nil, tracerr.Errorf("input file %s is %s, larger than the %s limit", path, units.Base2Bytes(stat.Size()), s.MaxSize)
	}

	reader := io.Reader(NewReaderLogInterceptor(file))
	if s.MaxSize > 0 {
		reader = io.LimitReader(reader, int64(s.MaxSize)+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	if s.MaxSize > 0 && int64(len(data)) > int64(s.MaxSize) {
		return nil, tracerr.Errorf("input file %s grew past the %s limit while reading", path, s.MaxSize)
	}
	if len(data) == 0 {
		return nil, tracerr.Errorf("input file %s is empty", path)
	}
	logrus.Debugf("got file %s buff size [%d]", path, len(data))
	return data, nil
}
