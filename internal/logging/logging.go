// Package logging provides the package-logger bootstrap shared by the
// decode and emit layers.
package logging

import (
	"sync"

	"go.uber.org/zap"
)

// Package is a lazily-initialized logger scoped to one library package.
// It yields a no-op logger until Set installs a real one; installed
// loggers are named after the owning package so records from the decode
// and emit layers stay distinguishable on a shared sink.
type Package struct {
	name   string
	once   sync.Once
	logger *zap.Logger
}

// New returns a Package logger for the named library package.
func New(name string) *Package {
	return &Package{name: name}
}

// Get returns the current logger instance.
// It uses a no-op logger by default.
func (p *Package) Get() *zap.Logger {
	p.once.Do(func() {
		if p.logger == nil {
			p.logger = zap.NewNop()
		}
	})
	return p.logger
}

// Set installs l, named after the owning package.
// This must be called before the first Get.
func (p *Package) Set(l *zap.Logger) {
	if l != nil && p.name != "" {
		l = l.Named(p.name)
	}
	p.logger = l
}
