package source

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"fortio.org/safecast"
)

// Handle is a view over a contiguous run of source text. Lexer, parser and
// spans are written against this contract and never against a concrete
// storage strategy, so the same pipeline works over borrowed byte slices,
// shared strings, or rope-backed buffers.
//
// Slice must be cheap: implementations re-view the underlying storage
// instead of copying wherever the storage permits. Text materialises an
// owned copy on demand.
type Handle interface {
	Len() uint32
	ByteAt(off uint32) byte
	Slice(lo, hi uint32) Handle
	Text() string
}

// DecodeRune decodes the UTF-8 rune starting at off. It returns
// (utf8.RuneError, 1) for an invalid byte sequence, matching utf8.DecodeRune.
func DecodeRune(h Handle, off uint32) (rune, uint32) {
	b0 := h.ByteAt(off)
	if b0 < utf8.RuneSelf {
		return rune(b0), 1
	}
	var buf [utf8.UTFMax]byte
	n := h.Len() - off
	if n > utf8.UTFMax {
		n = utf8.UTFMax
	}
	for i := uint32(0); i < n; i++ {
		buf[i] = h.ByteAt(off + i)
	}
	r, sz := utf8.DecodeRune(buf[:n])
	szu, err := safecast.Conv[uint32](sz)
	if err != nil {
		panic(fmt.Errorf("rune size overflow: %w", err))
	}
	return r, szu
}

// checkSlice validates slice bounds against a handle. Bounds outside the
// handle or bounds that split a multi-byte UTF-8 sequence are API misuse,
// not malformed input, and fail hard.
func checkSlice(h Handle, lo, hi uint32) {
	if lo > hi || hi > h.Len() {
		panic(fmt.Sprintf("source: slice bounds [%d:%d) out of range for handle of %d bytes", lo, hi, h.Len()))
	}
	if !isBoundary(h, lo) || !isBoundary(h, hi) {
		panic(fmt.Sprintf("source: slice bounds [%d:%d) split a UTF-8 sequence", lo, hi))
	}
}

// isBoundary reports whether off is a rune boundary. A continuation byte at
// off only fails the check when it belongs to a valid multi-byte sequence:
// stray continuation bytes are malformed input, which stays sliceable so the
// lexer can attach diagnostics to it.
func isBoundary(h Handle, off uint32) bool {
	if off == 0 || off == h.Len() {
		return true
	}
	if h.ByteAt(off)&0xC0 != 0x80 { // continuation bytes are 0b10xxxxxx
		return true
	}
	back := uint32(utf8.UTFMax - 1)
	if off < back {
		back = off
	}
	for d := uint32(1); d <= back; d++ {
		lead := off - d
		if h.ByteAt(lead)&0xC0 == 0x80 {
			continue
		}
		r, sz := DecodeRune(h, lead)
		decoded := r != utf8.RuneError || sz > 1
		return !(decoded && lead+sz > off)
	}
	return true
}

// Buffer is a Handle over a caller-owned byte slice. The caller keeps the
// storage alive for as long as any span derived from it is in use.
type Buffer struct {
	data []byte
}

// NewBuffer wraps data without copying it.
func NewBuffer(data []byte) Buffer {
	return Buffer{data: data}
}

func (b Buffer) Len() uint32 {
	n, err := safecast.Conv[uint32](len(b.data))
	if err != nil {
		panic(fmt.Errorf("buffer length overflow: %w", err))
	}
	return n
}

func (b Buffer) ByteAt(off uint32) byte { return b.data[off] }

func (b Buffer) Slice(lo, hi uint32) Handle {
	checkSlice(b, lo, hi)
	return Buffer{data: b.data[lo:hi]}
}

func (b Buffer) Text() string { return string(b.data) }

// Str is a Handle over a Go string. Strings are immutable and sub-slicing
// shares the backing array, so Str behaves as cheaply-shared storage.
type Str string

// NewStr wraps s.
func NewStr(s string) Str { return Str(s) }

func (s Str) Len() uint32 {
	n, err := safecast.Conv[uint32](len(s))
	if err != nil {
		panic(fmt.Errorf("string length overflow: %w", err))
	}
	return n
}

func (s Str) ByteAt(off uint32) byte { return s[off] }

func (s Str) Slice(lo, hi uint32) Handle {
	checkSlice(s, lo, hi)
	return s[lo:hi]
}

func (s Str) Text() string { return string(s) }

// Rope is a Handle over a sequence of string chunks. Slicing shares the
// chunk storage structurally; only boundary chunks are re-viewed.
type Rope struct {
	chunks []string
	starts []uint32 // starts[i] is the byte offset of chunks[i]
	length uint32
}

// NewRope builds a rope from chunks. Empty chunks are dropped. Chunk seams
// are invisible to readers: DecodeRune gathers bytes across seams, so a rune
// may straddle two chunks.
func NewRope(chunks ...string) Rope {
	r := Rope{}
	for _, c := range chunks {
		if c == "" {
			continue
		}
		r.starts = append(r.starts, r.length)
		r.chunks = append(r.chunks, c)
		n, err := safecast.Conv[uint32](len(c))
		if err != nil {
			panic(fmt.Errorf("rope length overflow: %w", err))
		}
		r.length += n
	}
	return r
}

func (r Rope) Len() uint32 { return r.length }

// chunkAt returns the index of the chunk containing off.
func (r Rope) chunkAt(off uint32) int {
	return sort.Search(len(r.starts), func(i int) bool { return r.starts[i] > off }) - 1
}

func (r Rope) ByteAt(off uint32) byte {
	i := r.chunkAt(off)
	return r.chunks[i][off-r.starts[i]]
}

func (r Rope) Slice(lo, hi uint32) Handle {
	checkSlice(r, lo, hi)
	if lo == hi {
		return Rope{}
	}
	first := r.chunkAt(lo)
	last := r.chunkAt(hi - 1)
	out := Rope{}
	for i := first; i <= last; i++ {
		c := r.chunks[i]
		cLo, cHi := uint32(0), uint32(len(c))
		if i == first {
			cLo = lo - r.starts[i]
		}
		if i == last {
			cHi = hi - r.starts[i]
		}
		out.starts = append(out.starts, out.length)
		out.chunks = append(out.chunks, c[cLo:cHi])
		out.length += cHi - cLo
	}
	return out
}

func (r Rope) Text() string {
	var b strings.Builder
	b.Grow(int(r.length))
	for _, c := range r.chunks {
		b.WriteString(c)
	}
	return b.String()
}
