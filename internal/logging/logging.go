// Package logging builds the zap logger used by the covobj CLI.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	m "github.com/mouse-blink/covobj/internal/model"
)

// DefaultLevel keeps the empty-result warning visible and walk details quiet.
const DefaultLevel = "warn"

// New returns a console logger writing to w at the given level. An empty
// level means DefaultLevel.
func New(w io.Writer, level string) (*zap.Logger, error) {
	if level == "" {
		level = DefaultLevel
	}

	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, &m.ConfigError{Field: "log level", Value: level, Err: err}
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	encoderCfg.CallerKey = ""
	encoderCfg.EncodeLevel = zapcore.LowercaseLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(w),
		lvl,
	)

	return zap.New(core).Named("covobj"), nil
}
