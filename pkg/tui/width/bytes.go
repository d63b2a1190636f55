// ABOUTME: Byte-buffer entry points that validate UTF-8 before measuring or cutting
// ABOUTME: Invalid input fails the whole call with ErrInvalidEncoding and no partial result

package width

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidEncoding is returned when byte input is not valid UTF-8.
var ErrInvalidEncoding = errors.New("invalid UTF-8")

// validUTF8 converts b to a string after checking its encoding.
func validUTF8(b []byte) (string, error) {
	if utf8.Valid(b) {
		return string(b), nil
	}
	off := 0
	for off < len(b) {
		r, size := utf8.DecodeRune(b[off:])
		if r == utf8.RuneError && size <= 1 {
			break
		}
		off += size
	}
	return "", fmt.Errorf("%w: bad byte at offset %d", ErrInvalidEncoding, off)
}

// VisibleWidthBytes is VisibleWidth for a byte buffer.
func VisibleWidthBytes(b []byte) (int, error) {
	s, err := validUTF8(b)
	if err != nil {
		return 0, err
	}
	return VisibleWidth(s), nil
}

// TruncateBytes is TruncateToWidth for byte buffers.
func TruncateBytes(text []byte, maxWidth int, ellipsis []byte, pad bool) (string, error) {
	s, err := validUTF8(text)
	if err != nil {
		return "", fmt.Errorf("text: %w", err)
	}
	e, err := validUTF8(ellipsis)
	if err != nil {
		return "", fmt.Errorf("ellipsis: %w", err)
	}
	return TruncateToWidth(s, maxWidth, e, pad), nil
}

// SliceBytes is SliceWithWidth for a byte buffer.
func SliceBytes(line []byte, startCol, length int, strict bool) (SliceResult, error) {
	s, err := validUTF8(line)
	if err != nil {
		return SliceResult{}, err
	}
	return SliceWithWidth(s, startCol, length, strict), nil
}

// ExtractSegmentsBytes is ExtractSegments for a byte buffer.
func ExtractSegmentsBytes(line []byte, beforeEnd, afterStart, afterLen int, strictAfter bool) (SegmentsResult, error) {
	s, err := validUTF8(line)
	if err != nil {
		return SegmentsResult{}, err
	}
	return ExtractSegments(s, beforeEnd, afterStart, afterLen, strictAfter), nil
}
