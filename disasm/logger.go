package disasm

import (
	"go.uber.org/zap"

	"github.com/wippyai/cil-disasm/internal/logging"
)

var pkgLogger = logging.New("disasm")

// Logger returns the disasm package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	return pkgLogger.Get()
}

// SetLogger configures the disasm package's logger.
// This must be called before any disassembly.
func SetLogger(l *zap.Logger) {
	pkgLogger.Set(l)
}
