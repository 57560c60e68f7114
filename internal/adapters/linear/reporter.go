// Package linear prints one result line per scheme and a closing summary.
package linear

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
	"go.trai.ch/xcbatch/internal/core/domain"
	"go.trai.ch/xcbatch/internal/ui/output"
	"go.trai.ch/xcbatch/internal/ui/style"
)

// Reporter implements ports.Reporter.
//
// In interactive mode the scheme name is printed with a running marker and the line is
// rewritten with "\r" once the outcome is known. Otherwise nothing is printed until the
// outcome is known, and the whole line is then written in its result color so the output
// stays readable in CI logs.
type Reporter struct {
	w           io.Writer
	out         *termenv.Output
	interactive bool
	width       int

	mu sync.Mutex
}

// nameReserve is the number of cells kept free for the icon and the duration.
const nameReserve = 14

// NewReporter creates a Reporter writing to w. A nil writer means os.Stdout.
func NewReporter(w io.Writer, interactive bool) *Reporter {
	if w == nil {
		w = os.Stdout
	}

	profile := output.ColorProfileANSI
	if interactive {
		profile = output.ColorProfile
	}

	return &Reporter{
		w:           w,
		out:         output.NewWithProfile(w, profile),
		interactive: interactive,
	}
}

// WithWidth truncates scheme names so interactive lines fit in width cells and "\r" can
// rewrite them. Zero disables truncation.
func (r *Reporter) WithWidth(width int) *Reporter {
	r.width = width
	return r
}

// OnSchemeStart shows the running scheme on an unfinished line. Linear output has no
// running state.
func (r *Reporter) OnSchemeStart(scheme string) {
	if !r.interactive {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	running := r.out.String(style.Running).Foreground(r.out.Color(string(style.Iris))).String()
	_, _ = fmt.Fprintf(r.w, "%s %s", running, r.fit(scheme))
}

// OnSchemeComplete prints the scheme's result line. Failures carry a non-zero exit code.
func (r *Reporter) OnSchemeComplete(outcome domain.Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()

	detail := formatDuration(outcome.Duration)
	if !outcome.Succeeded && outcome.ExitCode != 0 {
		detail += fmt.Sprintf(", exit %d", outcome.ExitCode)
	}
	r.result(outcome.Scheme, outcome.Succeeded, detail)
}

// OnSchemeAbort ends the scheme's line so the error that follows starts on its own line.
func (r *Reporter) OnSchemeAbort(scheme string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.result(scheme, false, "aborted")
}

func (r *Reporter) result(scheme string, succeeded bool, detail string) {
	icon := style.Check
	if !succeeded {
		icon = style.Cross
	}
	suffix := r.out.String("(" + detail + ")").Faint().String()

	if r.interactive {
		line := r.out.String(icon + " " + r.fit(scheme)).Foreground(r.resultColor(succeeded)).String()
		_, _ = fmt.Fprintf(r.w, "\r%s %s\n", line, suffix)
		return
	}

	line := r.out.String(scheme + " " + icon).Foreground(r.resultColor(succeeded)).String()
	_, _ = fmt.Fprintf(r.w, "%s %s\n", line, suffix)
}

// resultColor uses the palette on terminals and basic ANSI colors in logs.
func (r *Reporter) resultColor(succeeded bool) termenv.Color {
	switch {
	case r.interactive && succeeded:
		return r.out.Color(string(style.Green))
	case r.interactive:
		return r.out.Color(string(style.Red))
	case succeeded:
		return termenv.ANSIGreen
	default:
		return termenv.ANSIRed
	}
}

// OnRunComplete prints the totals and the elapsed time of the whole run.
func (r *Reporter) OnRunComplete(summary domain.RunSummary) {
	r.mu.Lock()
	defer r.mu.Unlock()

	line := fmt.Sprintf("Built %d scheme(s): %d succeeded, %d failed in %s",
		summary.Total, summary.Succeeded, summary.Failed, formatDuration(summary.Elapsed))
	_, _ = fmt.Fprintln(r.w, r.out.String(line).Bold().String())
}

// fit truncates name to the interactive line budget.
func (r *Reporter) fit(name string) string {
	if r.width <= 0 {
		return name
	}
	return runewidth.Truncate(name, max(r.width-nameReserve, 4), "...")
}

func formatDuration(d time.Duration) string {
	return d.Round(10 * time.Millisecond).String()
}
