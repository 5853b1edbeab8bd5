// Package logging implements domain.Logger on zap: every event is
// appended to a persistent log file as "<ISO timestamp> [<LEVEL>]
// <message>" and mirrored to stdout as the bare message.
package logging

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger writes leveled run events. Logging never fails loudly: sync
// and write errors are swallowed so a broken log sink cannot abort a
// sweep.
type Logger struct {
	zl     *zap.Logger
	closer io.Closer
}

// Open appends to the log file at path (creating it if needed) and
// mirrors messages to stdout for the process lifetime.
func Open(path string) (*Logger, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	l := NewWithWriters(f, os.Stdout)
	l.closer = f
	return l, nil
}

// NewWithWriters builds a Logger over explicit sinks. Used by Open
// and by tests.
func NewWithWriters(file, stdout io.Writer) *Logger {
	fileEnc := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:          "ts",
		LevelKey:         "level",
		MessageKey:       "msg",
		EncodeTime:       zapcore.ISO8601TimeEncoder,
		EncodeLevel:      bracketLevelEncoder,
		ConsoleSeparator: " ",
	})
	// Stdout carries the message only; timestamps and levels live in
	// the file.
	stdoutEnc := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey: "msg",
	})

	core := zapcore.NewTee(
		zapcore.NewCore(fileEnc, zapcore.AddSync(file), zapcore.InfoLevel),
		zapcore.NewCore(stdoutEnc, zapcore.AddSync(stdout), zapcore.InfoLevel),
	)
	return &Logger{zl: zap.New(core)}
}

// NewNop returns a Logger that discards everything.
func NewNop() *Logger {
	return &Logger{zl: zap.NewNop()}
}

func (l *Logger) Info(msg string)  { l.zl.Info(msg) }
func (l *Logger) Warn(msg string)  { l.zl.Warn(msg) }
func (l *Logger) Error(msg string) { l.zl.Error(msg) }

// Close flushes buffered entries and releases the log file. Safe to
// call on loggers without a file.
func (l *Logger) Close() {
	_ = l.zl.Sync()
	if l.closer != nil {
		_ = l.closer.Close()
	}
}

// bracketLevelEncoder renders levels as [INFO], [WARNING], [ERROR] to
// match the established log file format.
func bracketLevelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	name := level.CapitalString()
	if level == zapcore.WarnLevel {
		name = "WARNING"
	}
	enc.AppendString("[" + name + "]")
}
