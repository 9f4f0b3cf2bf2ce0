//go:build !windows

package observe

import (
	"os"
	"syscall"
)

var resizeSignals = []os.Signal{syscall.SIGWINCH}
