package progress

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Bar draws a single-line progress bar in the style of tqdm:
//
//	42%|████████░░░░░░░░░░░░| 4,200/10,000 [00:07<00:09, 600 px/s]
//
// Filled cells are colored along a gradient when the output is a terminal
// that supports color; otherwise the bar is plain text.
type Bar struct {
	out     io.Writer
	total   uint64
	model   progress.Model
	printer *message.Printer
}

// NewBar creates a bar with the given number of cells writing to w.
func NewBar(w io.Writer, total uint64, cells int) *Bar {
	return &Bar{
		out:   w,
		total: total,
		model: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(cells),
			progress.WithoutPercentage(),
			progress.WithColorProfile(lipgloss.NewRenderer(w).ColorProfile()),
		),
		printer: message.NewPrinter(language.English),
	}
}

// Line renders the bar for n completed units after elapsed time.
func (b *Bar) Line(n uint64, elapsed time.Duration) string {
	if n > b.total {
		n = b.total
	}

	frac := 1.0
	if b.total > 0 {
		frac = float64(n) / float64(b.total)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%3d%%|", int(frac*100))
	sb.WriteString(b.model.ViewAs(frac))
	sb.WriteString("| ")
	sb.WriteString(b.printer.Sprintf("%d/%d", n, b.total))

	rate := 0.0
	if secs := elapsed.Seconds(); secs > 0 {
		rate = float64(n) / secs
	}
	eta := "?"
	if rate > 0 {
		eta = clock(time.Duration(float64(b.total-n) / rate * float64(time.Second)))
	}
	sb.WriteString(b.printer.Sprintf(" [%s<%s, %d px/s]", clock(elapsed), eta, uint64(rate)))

	return sb.String()
}

// Draw redraws the bar in place.
func (b *Bar) Draw(n uint64, elapsed time.Duration) {
	_, _ = io.WriteString(b.out, "\r"+b.Line(n, elapsed))
}

// Finish ends the bar's line.
func (b *Bar) Finish() {
	_, _ = io.WriteString(b.out, "\n")
}

// clock formats d as mm:ss, or h:mm:ss past an hour.
func clock(d time.Duration) string {
	s := int64(d.Round(time.Second) / time.Second)
	if s >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", s/3600, s/60%60, s%60)
	}
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}
