package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.Logger for the node utilities.
//
// Console output is human-readable in development mode and JSON otherwise;
// the file output is always JSON and rotated through lumberjack.
//
// Example:
//
//	logger, err := NewLogger(Options{Level: InfoLevel, FilePath: "ebu.log"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer logger.Sync()
//
//	logger.Info("cache merged", zap.Int("persisted", 120))
type Logger struct {
	zap   *zap.Logger
	sugar *zap.SugaredLogger

	isDevelopment bool
	logFilePath   string
}

// Options configures NewLogger.
type Options struct {
	// Level is the minimum level written to both outputs.
	Level LogLevel

	// Development switches the console to the colored console encoder.
	Development bool

	// FilePath is the rotated JSON log file. Empty disables file output.
	FilePath string

	// File overrides the rotation settings; zero fields use defaults.
	File FileWriterConfig
}

// NewLogger creates a Logger teeing console and (optionally) file output.
func NewLogger(opts Options) (*Logger, error) {
	console := zapcore.Lock(os.Stderr)

	var core zapcore.Core
	if opts.FilePath != "" {
		if err := ensureLogDir(opts.FilePath); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		core = NewMultiCoreWithWriters(opts.Level, console, NewFileWriterWithConfig(opts.FilePath, opts.File), opts.Development)
	} else {
		core = zapcore.NewCore(consoleEncoder(opts.Development), console, opts.Level)
	}

	return newFromCore(core, opts.Development, opts.FilePath), nil
}

// NewWithCore builds a Logger around an existing core. Tests use this with
// zaptest/observer cores.
func NewWithCore(core zapcore.Core) *Logger {
	return newFromCore(core, false, "")
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return newFromCore(zapcore.NewNopCore(), false, "")
}

func newFromCore(core zapcore.Core, isDevelopment bool, path string) *Logger {
	zapLogger := zap.New(core,
		zap.AddCaller(),
		zap.AddCallerSkip(1), // skip this wrapper
	)
	return &Logger{
		zap:           zapLogger,
		sugar:         zapLogger.Sugar(),
		isDevelopment: isDevelopment,
		logFilePath:   path,
	}
}

// OrNop returns l, or a no-op logger when l is nil. Components accept a nil
// *Logger and call this once at construction.
func OrNop(l *Logger) *Logger {
	if l == nil {
		return Nop()
	}
	return l
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	if l == nil || l.zap == nil {
		return nil
	}
	return l.zap.Sync()
}

// Debug logs a message at DebugLevel.
func (l *Logger) Debug(msg string, fields ...zap.Field) {
	l.zap.Debug(msg, fields...)
}

// Info logs a message at InfoLevel.
func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.zap.Info(msg, fields...)
}

// Warn logs a message at WarnLevel.
func (l *Logger) Warn(msg string, fields ...zap.Field) {
	l.zap.Warn(msg, fields...)
}

// Error logs a message at ErrorLevel.
func (l *Logger) Error(msg string, fields ...zap.Field) {
	l.zap.Error(msg, fields...)
}

// Fatal logs a message at FatalLevel then calls os.Exit(1).
func (l *Logger) Fatal(msg string, fields ...zap.Field) {
	l.zap.Fatal(msg, fields...)
}

// Debugf logs a formatted message at DebugLevel.
func (l *Logger) Debugf(template string, args ...interface{}) {
	l.sugar.Debugf(template, args...)
}

// Infof logs a formatted message at InfoLevel.
func (l *Logger) Infof(template string, args ...interface{}) {
	l.sugar.Infof(template, args...)
}

// Warnf logs a formatted message at WarnLevel.
func (l *Logger) Warnf(template string, args ...interface{}) {
	l.sugar.Warnf(template, args...)
}

// With creates a child logger that adds fields to every entry.
//
// Example:
//
//	nodeLogger := logger.With(zap.String("node", "linecache"))
func (l *Logger) With(fields ...zap.Field) *Logger {
	child := l.zap.With(fields...)
	return &Logger{
		zap:           child,
		sugar:         child.Sugar(),
		isDevelopment: l.isDevelopment,
		logFilePath:   l.logFilePath,
	}
}

// Zap returns the underlying zap.Logger.
func (l *Logger) Zap() *zap.Logger {
	return l.zap
}

// IsDevelopment returns true if the logger is configured for development mode.
func (l *Logger) IsDevelopment() bool {
	return l.isDevelopment
}

// LogFilePath returns the path to the log file, or "" when file output is off.
func (l *Logger) LogFilePath() string {
	return l.logFilePath
}
