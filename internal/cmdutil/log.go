// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
)

// Warnf writes a WARN line to dst unless quiet is set. Used for per-query
// failures and low-identity placements, which never abort a batch.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// Infof writes a diagnostic line to dst when enabled (--verbose).
func Infof(dst io.Writer, enabled bool, format string, a ...any) {
	if !enabled {
		return
	}
	_, _ = fmt.Fprintf(dst, format+"\n", a...)
}
