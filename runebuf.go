// Package runebuf implements the binary codec used by the legacy game
// network protocol family.
//
// Wire integers in this protocol deviate from the usual encodings in a few
// game-specific ways: variable-width "smart" shorts, dwords laid out in
// middle or inverse middle endian, bytes obfuscated by additive offsets,
// and null-terminated single-byte-per-character strings. This package holds
// those transforms as pure functions over byte slices; the buffer and
// stream subpackages expose them over owned storage and over arbitrary
// io.Reader/io.Writer pairs respectively.
package runebuf

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Version is the last tagged version of the package
const Version = "1.0.0"

var logging bool
var logWriters = []zapcore.WriteSyncer{os.Stdout}
var logger *zap.Logger
var zapEncoderConfig = zapcore.EncoderConfig{
	TimeKey:        "ts",
	LevelKey:       "level",
	NameKey:        "logger",
	CallerKey:      "caller",
	MessageKey:     "msg",
	StacktraceKey:  "stacktrace",
	EncodeLevel:    zapcore.LowercaseLevelEncoder,
	EncodeTime:     zapcore.ISO8601TimeEncoder,
	EncodeDuration: zapcore.SecondsDurationEncoder,
}

// EnableLogging enables logging if true is passed and disables it if false
// is passed.
func EnableLogging(enable bool) {
	logging = enable
}

// Logging returns whether logging is currently enabled.
func Logging() bool { return logging }

// Logger returns the package logger, for use by the subpackages.
func Logger() *zap.Logger { return logger }

// AddLogWriter adds a new io.Writer as a target for writing logs.
func AddLogWriter(writer io.Writer) {
	logWriters = append(logWriters, zapcore.AddSync(writer))
	initializeLogger()
}

// SetLogWriters will set the passed io.Writer instances as targets for
// writing logs.
func SetLogWriters(writers ...io.Writer) {
	writesyncers := make([]zapcore.WriteSyncer, 0, len(writers))
	for _, w := range writers {
		writesyncers = append(writesyncers, zapcore.AddSync(w))
	}

	logWriters = writesyncers
	initializeLogger()
}

func initializeLogger() {
	ws := zap.CombineWriteSyncers(logWriters...)
	logger = zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zapEncoderConfig),
		ws, zapcore.InfoLevel,
	))
}

func init() {
	logging = false
	initializeLogger()
}
