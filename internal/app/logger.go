package app

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"patterns/internal/domain"
)

// NewLogger returns a development-style logger writing to w at level, tagged
// with a fresh session id. Level "off" yields a no-op logger.
func NewLogger(level string, w io.Writer) (*zap.Logger, error) {
	if level == "" || level == "off" {
		return zap.NewNop(), nil
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w: log level: %v", domain.ErrInvalidConfig, err)
	}

	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(w)), lvl)
	return zap.New(core).With(zap.String("session", uuid.NewString())), nil
}
