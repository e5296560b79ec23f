package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/TyOverby/snoot/diag"
	"github.com/TyOverby/snoot/source"
)

func TestPrettyExactFormat(t *testing.T) {
	src := source.NewStr("(1 2 3)")
	sp := source.NewSpan(src, 0, 7, 1, 1, 1, 8)
	d := diag.NewError(diag.SynInfo, sp, "this is a test").WithFile("this-is-a-file")

	var buf bytes.Buffer
	Pretty(&buf, d, PrettyOpts{})

	want := "error: this is a test\n" +
		" --> this-is-a-file:1:1\n" +
		"1 | (1 2 3)\n"
	if buf.String() != want {
		t.Fatalf("rendered:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestPrettyNoFileKeepsColons(t *testing.T) {
	src := source.NewStr("x")
	sp := source.NewSpan(src, 0, 1, 1, 1, 1, 2)
	d := diag.NewError(diag.SynInfo, sp, "m")

	var buf bytes.Buffer
	Pretty(&buf, d, PrettyOpts{})
	if !strings.Contains(buf.String(), " --> :1:1\n") {
		t.Fatalf("rendered:\n%q", buf.String())
	}
}

func TestPrettyLevels(t *testing.T) {
	src := source.NewStr("x")
	sp := source.NewSpan(src, 0, 1, 1, 1, 1, 2)

	tests := []struct {
		sev  diag.Severity
		want string
	}{
		{diag.SevError, "error: m\n"},
		{diag.SevWarning, "warning: m\n"},
		{diag.SevNote, "note: m\n"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		Pretty(&buf, diag.New(tt.sev, diag.SynInfo, sp, "m"), PrettyOpts{})
		if !strings.HasPrefix(buf.String(), tt.want) {
			t.Errorf("severity %v rendered %q", tt.sev, buf.String())
		}
	}
}

func TestPrettyMultiLineSpan(t *testing.T) {
	src := source.NewStr("(a\n b\n c)")
	sp := source.NewSpan(src, 0, 9, 1, 1, 3, 4)
	d := diag.NewError(diag.SynUnclosedList, sp, "spans three lines").WithFile("f")

	var buf bytes.Buffer
	Pretty(&buf, d, PrettyOpts{})

	want := "error: spans three lines\n" +
		" --> f:1:1\n" +
		"1 | (a\n" +
		"2 |  b\n" +
		"3 |  c)\n"
	if buf.String() != want {
		t.Fatalf("rendered:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestPrettyGutterAlignment(t *testing.T) {
	// 10 lines: the gutter pads single-digit numbers to two columns
	var sb strings.Builder
	for i := 0; i < 9; i++ {
		sb.WriteString("x\n")
	}
	sb.WriteString("(y")
	src := source.NewStr(sb.String())
	// span covering lines 9 and 10
	sp := source.NewSpan(src, 16, 20, 9, 1, 10, 3)
	d := diag.NewError(diag.SynUnclosedList, sp, "m").WithFile("f")

	var buf bytes.Buffer
	Pretty(&buf, d, PrettyOpts{})
	out := buf.String()
	if !strings.Contains(out, " 9 | x\n") {
		t.Fatalf("line 9 not right-aligned:\n%q", out)
	}
	if !strings.Contains(out, "10 | (y\n") {
		t.Fatalf("line 10 misrendered:\n%q", out)
	}
}

func TestPrettyUnderline(t *testing.T) {
	src := source.NewStr("(one two)")
	// "two": bytes 5..8
	sp := source.NewSpan(src, 5, 8, 1, 6, 1, 9)
	d := diag.NewError(diag.SynInfo, sp, "m").WithFile("f")

	var buf bytes.Buffer
	Pretty(&buf, d, PrettyOpts{Underline: true})

	want := "error: m\n" +
		" --> f:1:6\n" +
		"1 | (one two)\n" +
		"  |      ^^^\n"
	if buf.String() != want {
		t.Fatalf("rendered:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestPrettyUnderlineWideRunes(t *testing.T) {
	src := source.NewStr("(語 a)")
	// "語": bytes 1..4, one scalar, two display columns
	sp := source.NewSpan(src, 1, 4, 1, 2, 1, 3)
	d := diag.NewError(diag.SynInfo, sp, "m")

	var buf bytes.Buffer
	Pretty(&buf, d, PrettyOpts{Underline: true})

	// one lead column for the ( and two caret columns under the wide rune
	want := "error: m\n" +
		" --> :1:2\n" +
		"1 | (語 a)\n" +
		"  |  ^^\n"
	if buf.String() != want {
		t.Fatalf("rendered:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestPrettyNotes(t *testing.T) {
	src := source.NewStr("(a")
	sp := source.NewSpan(src, 0, 1, 1, 1, 1, 2)
	noteSp := source.NewSpan(src, 1, 2, 1, 2, 1, 3)
	d := diag.NewError(diag.SynUnclosedList, sp, "unclosed").
		WithFile("f").
		WithNote(noteSp, "last child here")

	var buf bytes.Buffer
	Pretty(&buf, d, PrettyOpts{ShowNotes: true})
	out := buf.String()
	if !strings.Contains(out, "note: last child here\n --> f:1:2\n") {
		t.Fatalf("note block missing:\n%q", out)
	}

	buf.Reset()
	Pretty(&buf, d, PrettyOpts{})
	if strings.Contains(buf.String(), "note:") {
		t.Fatal("notes rendered without ShowNotes")
	}
}

func TestPrettyBag(t *testing.T) {
	src := source.NewStr("a)")
	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.SynExtraClosing, source.NewSpan(src, 1, 2, 1, 2, 1, 3), "first"))
	bag.Add(diag.NewError(diag.SynExtraClosing, source.NewSpan(src, 1, 2, 1, 2, 1, 3), "second"))

	var buf bytes.Buffer
	PrettyBag(&buf, bag, PrettyOpts{})
	out := buf.String()
	if strings.Index(out, "first") > strings.Index(out, "second") {
		t.Fatal("bag order not preserved")
	}
}

func TestBase10Len(t *testing.T) {
	tests := []struct {
		n    uint32
		want int
	}{{1, 1}, {9, 1}, {10, 2}, {99, 2}, {100, 3}, {12345, 5}}
	for _, tt := range tests {
		if got := base10Len(tt.n); got != tt.want {
			t.Errorf("base10Len(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}
