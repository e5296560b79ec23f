package source

import (
	"path/filepath"
	"slices"
)

// normalizeCRLF replaces every \r\n with \n, leaving lone \r untouched.
// Returns the resulting slice and whether anything changed.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !slices.Contains(content, '\r') {
		return content, false
	}

	out := make([]byte, 0, len(content))
	changed := false

	i := 0
	for i < len(content) {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			out = append(out, '\n')
			i += 2
			changed = true
		} else {
			out = append(out, content[i])
			i++
		}
	}
	return out, changed
}

func removeBOM(content []byte) ([]byte, bool) {
	if len(content) < 3 {
		return content, false
	}
	if content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}
	return content, false
}

func buildLineIndex(h Handle) []uint32 {
	var out []uint32
	for i := uint32(0); i < h.Len(); i++ {
		if h.ByteAt(i) == '\n' {
			out = append(out, i)
		}
	}
	return out
}

// toLineCol resolves a byte offset into a 1-based line/column pair, with the
// column counted in Unicode scalar values from the start of the line.
func toLineCol(h Handle, lineIdx []uint32, off uint32) LineCol {
	// binary search: largest lineIdx[i] < off
	lo, hi := 0, len(lineIdx)-1
	for lo <= hi {
		mid := (lo + hi) >> 1
		if lineIdx[mid] < off {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	line := hi // 0-based index of the newline preceding off

	var startOff uint32
	if line >= 0 {
		startOff = lineIdx[line] + 1
	}

	col := uint32(1)
	for pos := startOff; pos < off; {
		_, sz := DecodeRune(h, pos)
		pos += sz
		col++
	}
	return LineCol{Line: uint32(line + 2), Col: col}
}

func normalizePath(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}
