// Package linemap converts between (line, character) cursor positions and
// byte offsets in a source snapshot.
package linemap

import (
	"fmt"
)

// Position is a zero-based (line, character) cursor position as supplied by
// the editor layer. Character counts bytes; multi-byte identifier characters
// are out of scope.
type Position struct {
	Line      uint32 `json:"line"`
	Character uint32 `json:"character"`
}

// LineMap is an immutable index of line start offsets for one source
// snapshot. It is built once per snapshot and never mutated, so lookups
// are safe for concurrent readers.
type LineMap struct {
	// starts[i] is the byte offset of the first byte of line i.
	starts []int
	size   int
}

// New scans the source once and records every line boundary.
func New(source []byte) *LineMap {
	starts := make([]int, 1, 64)
	starts[0] = 0
	for i, b := range source {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineMap{starts: starts, size: len(source)}
}

// LineCount returns the number of lines in the snapshot. A trailing newline
// counts as starting a final empty line, matching editor conventions.
func (m *LineMap) LineCount() int {
	return len(m.starts)
}

// Len returns the size of the snapshot in bytes.
func (m *LineMap) Len() int {
	return m.size
}

// OffsetFor maps a cursor position to a byte offset. Positions outside the
// snapshot's line/column bounds are a caller contract violation and yield an
// error rather than a panic or a silently corrupt offset.
func (m *LineMap) OffsetFor(pos Position) (int, error) {
	line := int(pos.Line)
	if line >= len(m.starts) {
		return 0, fmt.Errorf("line %d out of range (%d lines)", pos.Line, len(m.starts))
	}

	lineEnd := m.size
	if line+1 < len(m.starts) {
		lineEnd = m.starts[line+1]
	}

	offset := m.starts[line] + int(pos.Character)
	if offset > lineEnd {
		return 0, fmt.Errorf("character %d out of range on line %d", pos.Character, pos.Line)
	}
	return offset, nil
}

// PositionFor maps a byte offset back to a (line, character) position.
// Offsets past the end of the snapshot are an error.
func (m *LineMap) PositionFor(offset int) (Position, error) {
	if offset < 0 || offset > m.size {
		return Position{}, fmt.Errorf("offset %d out of range (%d bytes)", offset, m.size)
	}

	// Binary search for the last line start <= offset.
	lo, hi := 0, len(m.starts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if m.starts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}

	return Position{
		Line:      uint32(lo),
		Character: uint32(offset - m.starts[lo]),
	}, nil
}
