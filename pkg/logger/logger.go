// Package logger provides the logging interface used throughout the
// framework. It is a thin wrapper around zap's SugaredLogger so that callers
// are not coupled to a concrete logging implementation.
package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

// Logger is the framework's logging interface. Loggers should be injected
// rather than constructed in place, and tests should use [Test] so that log
// output is attached to the test.
type Logger interface {
	// Name returns the fully qualified name of the logger.
	Name() string

	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Fatal(args ...any)

	Debugf(format string, values ...any)
	Infof(format string, values ...any)
	Warnf(format string, values ...any)
	Errorf(format string, values ...any)
	Fatalf(format string, values ...any)

	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)
	Fatalw(msg string, keysAndValues ...any)

	// Sync flushes any buffered log entries. Applications should take care
	// to call Sync before exiting.
	Sync() error
}

// Config holds the settings for constructing a Logger.
type Config struct {
	Level zapcore.Level
}

// New returns a production Logger at the default info level.
func New() (Logger, error) {
	return defaultConfig().New()
}

// New returns a production Logger built from the config.
func (c *Config) New() (Logger, error) {
	return c.NewWith(func(cfg *zap.Config) {
		cfg.Level.SetLevel(c.Level)
	})
}

// NewWith returns a production Logger after applying cfgFn to the underlying
// zap config.
func (c *Config) NewWith(cfgFn func(*zap.Config)) (Logger, error) {
	cfg := zap.NewProductionConfig()
	cfgFn(&cfg)

	core, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return &logger{core.Sugar()}, nil
}

func defaultConfig() *Config {
	return &Config{Level: zapcore.InfoLevel}
}

// Test returns a Logger that writes through tb at debug level, so that log
// lines are reported against the test that produced them.
func Test(tb testing.TB) Logger {
	lggr := zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig()),
		zaptest.NewTestingWriter(tb),
		zapcore.DebugLevel,
	))

	return &logger{lggr.Sugar()}
}

// TestObserved returns a debug level Logger for tests along with the
// observed logs, which tests can use to assert on emitted entries.
func TestObserved(tb testing.TB, lvl zapcore.Level) (Logger, *observer.ObservedLogs) {
	observedCore, observedLogs := observer.New(lvl)

	lggr := zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig()),
		zaptest.NewTestingWriter(tb),
		zapcore.DebugLevel,
	), zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return zapcore.NewTee(core, observedCore)
	}))

	return &logger{lggr.Sugar()}, observedLogs
}

// Nop returns a no-op Logger. It never writes out logs or internal errors.
func Nop() Logger {
	return &logger{zap.New(zapcore.NewNopCore()).Sugar()}
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000000000")

	return cfg
}

type logger struct {
	*zap.SugaredLogger
}

func (l *logger) Name() string {
	return l.Desugar().Name()
}
