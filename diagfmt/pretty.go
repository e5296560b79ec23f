package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/TyOverby/snoot/diag"
	"github.com/TyOverby/snoot/source"
)

// Pretty renders one diagnostic in the fixed three-part layout:
//
//	<level>: <message>
//	 --> <file>:<line>:<col>
//	N | <source line>
//
// One numbered row per source line the span touches, numbers right-aligned
// to the widest one, line text verbatim. The file segment is empty when the
// diagnostic carries no file name; the colons stay.
func Pretty(w io.Writer, d diag.Diagnostic, opts PrettyOpts) {
	prettyBlock(w, d.Severity, d.Message, d.File, d.Primary, opts)
	if opts.ShowNotes {
		for _, n := range d.Notes {
			prettyBlock(w, diag.SevNote, n.Msg, d.File, n.Span, opts)
		}
	}
}

// PrettyBag renders every diagnostic in the bag, in bag order.
func PrettyBag(w io.Writer, bag *diag.Bag, opts PrettyOpts) {
	for _, d := range bag.Items() {
		Pretty(w, d, opts)
	}
}

func prettyBlock(w io.Writer, sev diag.Severity, msg, file string, sp source.Span, opts PrettyOpts) {
	fmt.Fprintf(w, "%s: %s\n", levelLabel(sev, opts.Color), msg)
	fmt.Fprintf(w, " --> %s:%d:%d\n", file, sp.LineStart, sp.ColStart)

	if !sp.Valid() {
		return
	}
	lines := splitLines(sp.Lines().Text())
	last := sp.LineStart + uint32(len(lines)) - 1
	pad := base10Len(last)
	for i, line := range lines {
		num := sp.LineStart + uint32(i)
		fmt.Fprintf(w, "%*d | %s\n", pad, num, line)
		if opts.Underline && num == sp.LineStart && sp.LineStart == sp.LineEnd {
			underline(w, pad, line, sp)
		}
	}
}

// underline emits a caret row under a single-line span. Carets are sized by
// terminal display width, so wide CJK runes get two columns each.
func underline(w io.Writer, pad int, line string, sp source.Span) {
	lead := line[:sp.OffsetInLines()]
	width := runewidth.StringWidth(sp.Text.Text())
	if width < 1 {
		width = 1
	}
	fmt.Fprintf(w, "%*s | %s%s\n",
		pad, "",
		strings.Repeat(" ", runewidth.StringWidth(lead)),
		strings.Repeat("^", width))
}

func levelLabel(sev diag.Severity, colored bool) string {
	if !colored {
		return sev.String()
	}
	var c *color.Color
	switch sev {
	case diag.SevError:
		c = color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		c = color.New(color.FgYellow, color.Bold)
	default:
		c = color.New(color.FgCyan, color.Bold)
	}
	return c.Sprint(sev.String())
}

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}

func base10Len(n uint32) int {
	l := 1
	for n >= 10 {
		n /= 10
		l++
	}
	return l
}
