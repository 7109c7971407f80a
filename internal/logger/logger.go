package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is replaced by Init. Until then it discards everything, which keeps
// packages usable from tests without any setup.
var Log = zap.NewNop()

// Init builds the process logger. Output goes to stderr only: stdout is
// reserved for the status payload.
func Init(debug bool) {
	level := zapcore.WarnLevel
	if debug {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		level,
	)

	Log = zap.New(core)
}

func Sync() {
	_ = Log.Sync()
}
