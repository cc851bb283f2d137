package text

import (
	"log/slog"

	"github.com/gogpu/glyphlayout"
)

// logger returns the package-wide logger configured via glyphlayout.SetLogger.
func logger() *slog.Logger {
	return glyphlayout.Logger()
}
