// ABOUTME: Line reader for command input
// ABOUTME: Splits on LF or CRLF and accepts lines up to 64 MiB

package main

import (
	"bufio"
	"fmt"
	"io"
)

const maxLineBytes = 64 << 20

func readLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return lines, nil
}
