// Package logging configures the process-wide zap logger used by the calculator binaries.
package logging

import (
	"io"
	"os"

	isatty "github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Levels lists the accepted values of a log level flag.
var Levels = []string{"error", "warn", "info", "debug"}

type Config struct {
	// Level is one of Levels.
	Level string
	// Name is the name of the logger installed as the global.
	Name string
	// Stdout receives entries below error level and Stderr the rest.
	// Both default to the process streams.
	Stdout, Stderr zapcore.WriteSyncer
	// JSON forces the JSON encoder. Otherwise it is used only when Stdout is not a terminal.
	JSON bool
}

// New builds a logger that writes errors to Stderr and everything else at or above Level to Stdout.
func New(conf Config) (*zap.Logger, error) {
	var minLevel zapcore.Level
	if err := minLevel.UnmarshalText([]byte(conf.Level)); err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", conf.Level)
	}

	stdout, stderr := conf.Stdout, conf.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	errorPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.ErrorLevel && lvl >= minLevel
	})
	infoPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl < zapcore.ErrorLevel && lvl >= minLevel
	})

	encoder := newEncoder(conf.JSON || !isTerminal(stdout))
	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.Lock(stderr), errorPriority),
		zapcore.NewCore(encoder, zapcore.Lock(stdout), infoPriority),
	)

	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}

	stackTraceEnabler := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl > zapcore.ErrorLevel
	})

	return zap.New(core, zap.Fields(zap.String("host", host)), zap.AddStacktrace(stackTraceEnabler)), nil
}

// Init builds a logger with New and installs it as the zap and standard library global.
func Init(conf Config) error {
	logger, err := New(conf)
	if err != nil {
		return err
	}

	name := conf.Name
	if name == "" {
		name = "app"
	}

	zap.ReplaceGlobals(logger.Named(name))
	zap.RedirectStdLog(logger.Named("stdlog"))
	return nil
}

func newEncoder(json bool) zapcore.Encoder {
	if json {
		encoderConf := zap.NewProductionEncoderConfig()
		encoderConf.MessageKey = "message"
		encoderConf.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewJSONEncoder(encoderConf)
	}

	encoderConf := zap.NewDevelopmentEncoderConfig()
	encoderConf.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(encoderConf)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
