package svgtiles

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// loggerPtr holds the logger that receives parse and extraction
// diagnostics. It is swapped atomically so SetLogger may race with
// extraction running on other goroutines.
var loggerPtr atomic.Pointer[zap.Logger]

func init() {
	loggerPtr.Store(zap.NewNop())
}

// SetLogger sets the logger used for diagnostics such as skipped transform
// functions, unknown stroke colours or arcs drawn as straight lines. By
// default nothing is logged; pass nil to go back to that.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerPtr.Store(l)
}

// Logger returns the current diagnostics logger.
func Logger() *zap.Logger {
	return loggerPtr.Load()
}
