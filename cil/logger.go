package cil

import (
	"go.uber.org/zap"

	"github.com/wippyai/cil-disasm/internal/logging"
)

var pkgLogger = logging.New("cil")

// Logger returns the cil package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	return pkgLogger.Get()
}

// SetLogger configures the cil package's logger.
// This must be called before any decoding.
func SetLogger(l *zap.Logger) {
	pkgLogger.Set(l)
}
