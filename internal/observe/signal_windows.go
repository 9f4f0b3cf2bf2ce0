//go:build windows

package observe

import "os"

// Windows consoles have no resize signal; only the initial width is known.
var resizeSignals []os.Signal
