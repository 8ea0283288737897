package view

import (
	"fmt"
	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/nimatrueway/basenc/internal/config"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"io"
	"os"
	"path"
	"runtime"
)

// LogFile receives log output, stdout is kept free for codec results.
var LogFile io.Writer = os.Stderr

func AppendRaw(str string) {
	_, err := LogFile.Write([]byte(str))
	if err != nil {
		panic(fmt.Sprintf("Failed to write to log file: %s", err.Error()))
	}
}

func Init(cfg *config.Struct) error {
	logrus.SetLevel(cfg.Log.Level)
	if cfg.Log.File == "" {
		return nil
	}

	file := config.ProcessString(cfg.Log.File)
	logFile, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", file, err)
	}
	// global variable used for AppendRaw
	LogFile = logFile

	logrus.SetOutput(LogFile)
	logrus.SetFormatter(newFormatter(true))
	return nil
}

func newFormatter(noColors bool) logrus.Formatter {
	return &nested.Formatter{
		NoColors:        noColors,
		TimestampFormat: "2006-01-02 15:04:05.000 ",
		CallerFirst:     true,
		CustomCallerFormatter: func(f *runtime.Frame) string {
			return fmt.Sprintf("%s:%d", path.Base(f.File), f.Line)
		},
	}
}

func init() {
	logrus.SetOutput(LogFile)
	logrus.SetReportCaller(true)
	logrus.SetFormatter(newFormatter(!term.IsTerminal(int(os.Stderr.Fd()))))
}
