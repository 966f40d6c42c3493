package output

import (
	"io"

	"github.com/CyranoB/slop-detector/internal/engine"
)

// Formatter defines the interface for rendering score reports.
type Formatter interface {
	Format(w io.Writer, reports []engine.Report) error
}
