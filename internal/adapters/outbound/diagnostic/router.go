package diagnostic

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spirvkit/spirv-val/internal/domain"
)

var (
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

// Router implements domain.MessageConsumer. Errors go to errOut, warnings
// and info to out, one line per diagnostic, unbuffered.
//
// Lines are byte-exact "<label>: <index>: <message>" when the writer is not a
// color terminal (files, pipes, buffers) or NO_COLOR is set. On a color
// terminal, or with CLICOLOR_FORCE, the label carries ANSI styling and only
// the visible text has that shape.
type Router struct {
	out    io.Writer
	errOut io.Writer

	errorTag lipgloss.Style
	warnTag  lipgloss.Style
	infoTag  lipgloss.Style
}

// New creates a Router. Labels are colored only when the target writer is a
// color-capable terminal.
func New(out, errOut io.Writer) *Router {
	outR := lipgloss.NewRenderer(out)
	errR := lipgloss.NewRenderer(errOut)
	return &Router{
		out:      out,
		errOut:   errOut,
		errorTag: errR.NewStyle().Foreground(danger).Bold(true),
		warnTag:  outR.NewStyle().Foreground(warning).Bold(true),
		infoTag:  outR.NewStyle().Foreground(info),
	}
}

// Consume prints d as "<label>: <index>: <message>".
func (r *Router) Consume(d domain.Diagnostic) {
	switch d.Level {
	case domain.LevelFatal, domain.LevelInternalError, domain.LevelError:
		r.print(r.errOut, r.errorTag, "error:", d)
	case domain.LevelWarning:
		r.print(r.out, r.warnTag, "warning:", d)
	case domain.LevelInfo:
		r.print(r.out, r.infoTag, "info:", d)
	}
}

func (r *Router) print(w io.Writer, tag lipgloss.Style, label string, d domain.Diagnostic) {
	fmt.Fprintf(w, "%s %d: %s\n", tag.Render(label), d.Position.Index, d.Message)
}
