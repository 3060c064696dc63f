package logging

import (
	"go.uber.org/zap/zapcore"
)

// NewMultiCoreWithWriters tees a console core and a JSON file core.
//
// The file side is always JSON. The console side uses the colored console
// encoder when isDev is set, JSON otherwise.
//
// Example:
//
//	var buf bytes.Buffer
//	core := NewMultiCoreWithWriters(DebugLevel, zapcore.AddSync(os.Stderr), zapcore.AddSync(&buf), true)
func NewMultiCoreWithWriters(level zapcore.Level, consoleWriter, fileWriter zapcore.WriteSyncer, isDev bool) zapcore.Core {
	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(NewEncoderConfig()),
		fileWriter,
		level,
	)
	consoleCore := zapcore.NewCore(
		consoleEncoder(isDev),
		consoleWriter,
		level,
	)
	return zapcore.NewTee(consoleCore, fileCore)
}

func consoleEncoder(isDev bool) zapcore.Encoder {
	if isDev {
		return zapcore.NewConsoleEncoder(NewConsoleEncoderConfig())
	}
	return zapcore.NewJSONEncoder(NewEncoderConfig())
}
